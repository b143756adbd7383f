// Package counter provides a counter whose step is chosen by an optional data
// source. A source supplies a count-dependent increment, a fixed increment,
// or neither; the counter probes for each capability on every Increment.
package counter

// IncrementForCounter supplies an increment that depends on the current count.
type IncrementForCounter interface {
	IncrementForCount(count int) int
}

// FixedIncrementer supplies the same increment every time.
type FixedIncrementer interface {
	FixedIncrement() int
}

// OptionalSource decides per call whether it has an increment to offer. It is
// for sources whose capabilities are only known at runtime.
type OptionalSource interface {
	Increment(count int) (amount int, ok bool)
}

// DataSource is any value implementing zero or more of IncrementForCounter,
// FixedIncrementer and OptionalSource.
type DataSource any

// Counter is a running count.
type Counter struct {
	Count      int
	DataSource DataSource
}

// Increment adds the data source's increment to Count. Preference order is
// OptionalSource, IncrementForCounter, then FixedIncrementer. Without a source,
// or with a source offering nothing, Count is unchanged.
func (c *Counter) Increment() {
	if amount, ok := Amount(c.DataSource, c.Count); ok {
		c.Count += amount
	}
}

// Amount returns the increment src offers at count.
func Amount(src DataSource, count int) (int, bool) {
	switch s := src.(type) {
	case OptionalSource:
		return s.Increment(count)
	case IncrementForCounter:
		return s.IncrementForCount(count), true
	case FixedIncrementer:
		return s.FixedIncrement(), true
	default:
		return 0, false
	}
}

// ThreeSource always increments by three.
type ThreeSource struct{}

// FixedIncrement returns 3.
func (ThreeSource) FixedIncrement() int { return 3 }

// TowardsZeroSource moves the count one step towards zero.
type TowardsZeroSource struct{}

// IncrementForCount returns +1 below zero, -1 above zero, and 0 at zero.
func (TowardsZeroSource) IncrementForCount(count int) int {
	switch {
	case count == 0:
		return 0
	case count < 0:
		return 1
	default:
		return -1
	}
}

// Funcs is a DataSource built from optional function fields.
type Funcs struct {
	IncrementForCount func(count int) int
	FixedIncrement    func() int
}

// Increment consults IncrementForCount, then FixedIncrement.
func (f Funcs) Increment(count int) (int, bool) {
	if f.IncrementForCount != nil {
		return f.IncrementForCount(count), true
	}
	if f.FixedIncrement != nil {
		return f.FixedIncrement(), true
	}
	return 0, false
}
