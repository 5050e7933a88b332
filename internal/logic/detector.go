package logic

// Detect applies the three-clause detection rule to one reading.
// A ghost is present iff EMF is strictly above the EMF threshold,
// temperature is strictly below the temperature threshold, and motion
// was detected. Values exactly at a threshold are outside the ghost
// region. Pure and total: a NaN temperature fails the comparison and
// yields false.
func Detect(r Input, t Thresholds) bool {
	return r.EMF > t.EMF && r.Temperature < t.Temperature && r.Motion
}
