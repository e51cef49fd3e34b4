package animations

// Animation walks a frame range. Speed is in frames per tick, so 0.5 shows
// every frame for two ticks.
type Animation struct {
	First    int
	Last     int
	Step     int // how many indices do we move per frame
	Speed    float32
	progress float32
	frame    int
	Looped   bool
}

func (a *Animation) Update() {
	a.progress += a.Speed
	for a.progress >= 1 {
		a.progress--
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.progress = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First: first,
		Last:  last,
		Step:  step,
		Speed: speed,
		frame: first,
	}
}
