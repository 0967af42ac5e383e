package uri

//go:generate go tool mockgen -typed -destination ../internal/testutil/hookmock/hook.go -package hookmock . Hook

// Hook is a scheme-specific policy applied by a [Parser] after generic normalization.
//
// Apply receives normalized components of a URI with the scheme the hook was registered for,
// and returns components that replace them, for example with the default port elided.
// The returned components are validated and normalized again.
// A returned error is reported as [*SchemePolicyError].
type Hook interface {
	Apply(c Components) (Components, error)
}

// HookFunc is an adapter to allow the use of ordinary functions as [Hook].
type HookFunc func(c Components) (Components, error)

// Apply calls fn(c).
func (fn HookFunc) Apply(c Components) (Components, error) { return fn(c) }
