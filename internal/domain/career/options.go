package career

// Option applies a configuration option to the Clock.
type Option func(*Clock)

// WithSeasonLength sets the number of weeks per season.
func WithSeasonLength(weeks int) Option {
	return func(c *Clock) {
		if weeks > 0 {
			c.seasonLength = weeks
		}
	}
}
