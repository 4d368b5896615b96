package vector

import "github.com/pkg/errors"

var errInjected = errors.New("injected element failure")

type box struct{ val int }

// tracker is a Lifecycle[*box] that counts hook calls, tracks live
// elements and fails on demand. A fail* countdown of n lets n more calls
// through before failing; -1 never fails.
type tracker struct {
	live       int
	constructs int
	copies     int
	assigns    int
	destroys   int

	failConstruct int
	failCopy      int
	failAssign    int
}

func newTracker() *tracker {
	return &tracker{failConstruct: -1, failCopy: -1, failAssign: -1}
}

func countdown(n *int) bool {
	if *n == 0 {
		return true
	}
	if *n > 0 {
		*n--
	}
	return false
}

func (tr *tracker) Construct() (*box, error) {
	if countdown(&tr.failConstruct) {
		return nil, errInjected
	}
	tr.constructs++
	tr.live++
	return &box{}, nil
}

func (tr *tracker) Copy(src *box) (*box, error) {
	if countdown(&tr.failCopy) {
		return nil, errInjected
	}
	tr.copies++
	tr.live++
	return &box{val: src.val}, nil
}

func (tr *tracker) Assign(dst **box, src *box) error {
	if countdown(&tr.failAssign) {
		return errInjected
	}
	tr.assigns++
	(*dst).val = src.val
	return nil
}

func (tr *tracker) Destroy(v **box) {
	tr.destroys++
	tr.live--
}

func boxes(vals ...int) []*box {
	out := make([]*box, len(vals))
	for i, v := range vals {
		out[i] = &box{val: v}
	}
	return out
}

func boxVals(v *Vector[*box]) []int {
	out := make([]int, 0, v.Len())
	for _, b := range v.All() {
		out = append(out, b.val)
	}
	return out
}
