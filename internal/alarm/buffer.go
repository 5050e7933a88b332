package alarm

// alertRing is a fixed-capacity FIFO of alerts. The oldest alert is
// overwritten once the ring is full.
// Not safe for concurrent use; the caller must synchronize.
type alertRing struct {
	buf      []Alert
	capacity int
	head     int // next write position
	count    int
}

func newAlertRing(capacity int) *alertRing {
	return &alertRing{
		buf:      make([]Alert, capacity),
		capacity: capacity,
	}
}

func (r *alertRing) push(a Alert) {
	r.buf[r.head] = a
	r.head = (r.head + 1) % r.capacity
	if r.count < r.capacity {
		r.count++
	}
}

// at returns a pointer to the i-th alert, oldest first.
// The pointer is valid until the next push.
func (r *alertRing) at(i int) *Alert {
	if i < 0 || i >= r.count {
		return nil
	}
	start := (r.head - r.count + r.capacity) % r.capacity
	return &r.buf[(start+i)%r.capacity]
}

// items returns an oldest-first copy of the ring contents.
func (r *alertRing) items() []Alert {
	if r.count == 0 {
		return nil
	}

	result := make([]Alert, r.count)
	start := (r.head - r.count + r.capacity) % r.capacity
	for i := 0; i < r.count; i++ {
		result[i] = r.buf[(start+i)%r.capacity]
	}
	return result
}

func (r *alertRing) clear() {
	r.count = 0
	r.head = 0
}

func (r *alertRing) len() int {
	return r.count
}
