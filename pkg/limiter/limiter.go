package limiter

// Limiter marks providers that already throttle their calls.
type Limiter interface {
	limiterSetup()
}
