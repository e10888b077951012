package ui

import "github.com/hajimehoshi/ebiten/v2"

// Screen is one page of the window. Only the top of the stack is updated
// and drawn.
type Screen interface {
	// Update handles input. A non-nil transition changes the stack.
	Update() (*ScreenTransition, error)
	Draw(dst *ebiten.Image)
	// OnEnter is called whenever the screen becomes the top of the stack.
	OnEnter()
	// OnExit is called when the screen is covered or removed.
	OnExit()
	Name() string
}

type TransitionType int

const (
	TransitionPush TransitionType = iota
	TransitionPop
)

type ScreenTransition struct {
	Type   TransitionType
	Screen Screen // nil for Pop
}

// ScreenManager manages a stack of screens. The window closes once the
// stack is empty.
type ScreenManager struct {
	stack []Screen
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

func (sm *ScreenManager) Push(s Screen) {
	if top := sm.Current(); top != nil {
		top.OnExit()
	}
	sm.stack = append(sm.stack, s)
	s.OnEnter()
}

func (sm *ScreenManager) Pop() {
	top := sm.Current()
	if top == nil {
		return
	}
	top.OnExit()
	sm.stack = sm.stack[:len(sm.stack)-1]
	if next := sm.Current(); next != nil {
		next.OnEnter()
	}
}

// ClearStack exits and removes all screens.
func (sm *ScreenManager) ClearStack() {
	for len(sm.stack) > 0 {
		sm.stack[len(sm.stack)-1].OnExit()
		sm.stack = sm.stack[:len(sm.stack)-1]
	}
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *ScreenManager) Update() error {
	s := sm.Current()
	if s == nil {
		return nil
	}
	tr, err := s.Update()
	if err != nil || tr == nil {
		return err
	}
	switch tr.Type {
	case TransitionPush:
		sm.Push(tr.Screen)
	case TransitionPop:
		sm.Pop()
	}
	return nil
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(dst)
	}
}

func (sm *ScreenManager) StackSize() int {
	return len(sm.stack)
}
