package ratelimit

// KeyFor builds a limiter key for one client under one policy. Clients are
// identified by IP, matching per-address throttling on the API surface.
func KeyFor(policy Policy, clientIP string) string {
	if clientIP == "" || policy.Limit <= 0 {
		return ""
	}
	return policy.Name + ":" + clientIP
}
