// Package middleware groups the Fiber middleware used by the HTTP server.
//
//   - rayid: assigns every request a Ray ID (X-Ray-ID header, "ray_id" local).
//   - auth: rejects requests without the configured API key.
//
// RayID must be registered first so every later log line can be correlated.
package middleware
