// Package subscribe implements the newsletter subscription forwarder.
//
// A subscription arrives as a JSON body, a form body or query parameters. The
// input runs through an explicit parser Chain (JSONParser, FormParser,
// QueryParser); each field takes the first non-empty value in that order. The
// normalised Request is then posted once to the Beehiiv subscriptions endpoint
// with a bearer key resolved by Credentials.
//
// # Credentials
//
// Credentials prefers the configured key (BEEHIIV_API_KEY) and otherwise reads
// the key file. The first successful resolution is cached for the process lifetime.
//
// # HTTP Endpoints
//
//   - POST /api/subscribe : 302 to the success page, 400 without email,
//     provider status on rejection, 500 on any other failure.
//   - ANY  /api/subscribe : 405 with "Allow: POST" for other methods.
//   - ANY  /api/*         : 404.
package subscribe
