package core

import "testing"

func TestViewportNotifiesSubscribers(t *testing.T) {
	vp := NewViewport(80, 24)
	var got [][2]int
	unsub := vp.Subscribe(func(w, h int) { got = append(got, [2]int{w, h}) })

	if vp.Resize(80, 24) {
		t.Fatal("resize to the same size should not notify")
	}
	if !vp.Resize(120, 40) {
		t.Fatal("resize should report a change")
	}
	if len(got) != 1 || got[0] != [2]int{120, 40} {
		t.Fatalf("notifications = %v", got)
	}
	if w, h := vp.Size(); w != 120 || h != 40 {
		t.Fatalf("size = %dx%d", w, h)
	}

	unsub()
	vp.Resize(10, 10)
	if len(got) != 1 {
		t.Fatalf("unsubscribed callback fired: %v", got)
	}
}

func TestViewportSubscriberOrder(t *testing.T) {
	vp := NewViewport(1, 1)
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		vp.Subscribe(func(int, int) { order = append(order, i) })
	}
	vp.Resize(2, 2)
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Fatalf("order = %v", order)
	}
}

func TestViewportClose(t *testing.T) {
	vp := NewViewport(1, 1)
	calls := 0
	vp.Subscribe(func(int, int) { calls++ })
	vp.Close()
	if vp.Resize(5, 5) {
		t.Fatal("closed viewport must ignore resize")
	}
	vp.Subscribe(func(int, int) { calls++ })
	vp.Resize(6, 6)
	if calls != 0 {
		t.Fatalf("callbacks after close = %d", calls)
	}
}
