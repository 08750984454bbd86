package fees

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMonthlyFee sets the fee charged per billing month, in the smallest
// whole currency unit.
func WithMonthlyFee(fee int64) Option {
	return func(e *Engine) {
		if fee > 0 {
			e.monthlyFee = fee
		}
	}
}
