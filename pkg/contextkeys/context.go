package contextkeys

// Custom key type to avoid context collisions.
type contextKey string

// ClaimsContextKey holds the resolved identity claims for a request, if any.
const ClaimsContextKey = contextKey("identity_claims")
