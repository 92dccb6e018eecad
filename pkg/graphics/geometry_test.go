package graphics

import "testing"

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	tests := []struct {
		name string
		p    Offset
		want bool
	}{
		{"inside", Offset{X: 15, Y: 25}, true},
		{"top-left corner", Offset{X: 10, Y: 20}, true},
		{"right edge", Offset{X: 40, Y: 25}, false},
		{"bottom edge", Offset{X: 15, Y: 60}, false},
		{"left of rect", Offset{X: 9.9, Y: 25}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestRectIntersectAndUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	if got, want := a.Intersect(b), RectFromLTWH(5, 5, 5, 5); got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}
	if got, want := a.Union(b), RectFromLTWH(0, 0, 15, 15); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if got := a.Intersect(RectFromLTWH(20, 20, 1, 1)); !got.IsEmpty() {
		t.Errorf("disjoint Intersect = %+v, want empty", got)
	}
}

func TestFrameGetters(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	if r.X() != 10 || r.Y() != 20 {
		t.Errorf("X,Y = %v,%v, want 10,20", r.X(), r.Y())
	}
	if r.CenterX() != 60 || r.CenterY() != 45 {
		t.Errorf("CenterX,CenterY = %v,%v, want 60,45", r.CenterX(), r.CenterY())
	}
	if r.Origin() != (Offset{X: 10, Y: 20}) {
		t.Errorf("Origin = %v", r.Origin())
	}
	if r.Size() != (Size{Width: 100, Height: 50}) {
		t.Errorf("Size = %v", r.Size())
	}
}

func TestFrameSetters(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	tests := []struct {
		name string
		got  Rect
		want Rect
	}{
		{"WithX", r.WithX(0), RectFromLTWH(0, 20, 100, 50)},
		{"WithLeft", r.WithLeft(5), RectFromLTWH(5, 20, 100, 50)},
		{"WithY", r.WithY(0), RectFromLTWH(10, 0, 100, 50)},
		{"WithTop", r.WithTop(7), RectFromLTWH(10, 7, 100, 50)},
		{"WithRight", r.WithRight(200), RectFromLTWH(100, 20, 100, 50)},
		{"WithBottom", r.WithBottom(100), RectFromLTWH(10, 50, 100, 50)},
		{"WithCenterX", r.WithCenterX(0), RectFromLTWH(-50, 20, 100, 50)},
		{"WithCenterY", r.WithCenterY(0), RectFromLTWH(10, -25, 100, 50)},
		{"WithWidth", r.WithWidth(30), RectFromLTWH(10, 20, 30, 50)},
		{"WithHeight", r.WithHeight(30), RectFromLTWH(10, 20, 100, 30)},
		{"WithOrigin", r.WithOrigin(Offset{X: 1, Y: 2}), RectFromLTWH(1, 2, 100, 50)},
		{"WithSize", r.WithSize(Size{Width: 3, Height: 4}), RectFromLTWH(10, 20, 3, 4)},
	}
	for _, tt := range tests {
		if !tt.got.ApproxEqual(tt.want) {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

type testView struct {
	frame Rect
	sets  int
}

func (v *testView) Frame() Rect { return v.frame }

func (v *testView) SetFrame(r Rect) {
	v.frame = r
	v.sets++
}

func TestFramerHelpers(t *testing.T) {
	v := &testView{frame: RectFromLTWH(0, 0, 40, 20)}

	SetRight(v, 100)
	SetBottom(v, 50)
	if want := RectFromLTWH(60, 30, 40, 20); !v.frame.ApproxEqual(want) {
		t.Errorf("after SetRight/SetBottom frame = %+v, want %+v", v.frame, want)
	}

	SetWidth(v, 10)
	SetCenterX(v, 0)
	if want := RectFromLTWH(-5, 30, 10, 20); !v.frame.ApproxEqual(want) {
		t.Errorf("after SetWidth/SetCenterX frame = %+v, want %+v", v.frame, want)
	}

	SetOrigin(v, Offset{})
	SetSize(v, Size{Width: 1, Height: 2})
	SetX(v, 3)
	SetY(v, 4)
	SetLeft(v, 5)
	SetTop(v, 6)
	SetHeight(v, 8)
	SetCenterY(v, 10)
	if want := RectFromLTWH(5, 6, 1, 8); !v.frame.ApproxEqual(want) {
		t.Errorf("frame = %+v, want %+v", v.frame, want)
	}
	if v.sets != 12 {
		t.Errorf("SetFrame called %d times, want 12", v.sets)
	}
}
