package ui

import (
	"context"

	"navstack/internal/backstack"
	"navstack/internal/logger"
	"navstack/internal/trace"
)

// Navigator is the navigation controller. It owns the back stack; every
// mutation goes through it so each transition is logged and traced exactly
// once. The app re-reads Current after handling a navigation message to
// decide what to render.
type Navigator struct {
	stack  backstack.BackStack[Screen]
	tracer *trace.NavTracer // nil when tracing is disabled
}

// NewNavigator creates a navigator with root as the bottom of the history.
// The root is never removed implicitly; Back and UnwindToRoot stop at it.
func NewNavigator(root Screen, tracer *trace.NavTracer) *Navigator {
	n := &Navigator{tracer: tracer}
	n.stack.OnChange(func(c backstack.Change[Screen]) {
		logger.Logger.Debugw("back stack changed",
			"op", c.Op.String(), "version", c.Version, "size", c.Size)
	})
	n.Push(root)
	return n
}

// Push makes s the new top screen and returns its record.
func (n *Navigator) Push(s Screen) backstack.Record[Screen] {
	before := n.stack.Len()
	rec := n.stack.PushDestination(s)
	n.emit("push", rec.Key(), before)
	return rec
}

// Back pops the top screen. Returns false (and leaves the stack alone) when
// the history is empty; callers normally guard with AtRoot to keep the root
// screen in place.
func (n *Navigator) Back() bool {
	before := n.stack.Len()
	rec, ok := n.stack.Pop()
	if !ok {
		return false
	}
	n.emit("pop", rec.Key(), before)
	return true
}

// UnwindTo pops screens until pred matches the current top or the stack is
// empty. Returns the number of screens removed.
func (n *Navigator) UnwindTo(pred func(Screen) bool) int {
	before := n.stack.Len()
	popped := n.stack.PopUntil(func(r backstack.Record[Screen]) bool {
		return pred(r.Destination())
	})
	if popped > 0 {
		key := ""
		if top, ok := n.stack.Top(); ok {
			key = top.Key()
		}
		n.emit("unwind", key, before)
	}
	return popped
}

// UnwindToRoot pops everything above the root screen.
func (n *Navigator) UnwindToRoot() int {
	recs := n.stack.Records()
	if len(recs) == 0 {
		return 0
	}
	rootKey := recs[len(recs)-1].Key()
	before := n.stack.Len()
	popped := n.stack.PopUntil(func(r backstack.Record[Screen]) bool {
		return r.Key() == rootKey
	})
	if popped > 0 {
		n.emit("unwind", rootKey, before)
	}
	return popped
}

// Current returns the top screen, or nil when the history is empty.
func (n *Navigator) Current() Screen {
	top, ok := n.stack.Top()
	if !ok {
		return nil
	}
	return top.Destination()
}

// Depth returns the number of screens in the history.
func (n *Navigator) Depth() int { return n.stack.Len() }

// AtRoot reports whether only the root screen remains.
func (n *Navigator) AtRoot() bool { return n.stack.IsAtRoot() }

// Breadcrumbs returns screen titles root-first, for the trail line.
func (n *Navigator) Breadcrumbs() []string {
	recs := n.stack.Records()
	out := make([]string, len(recs))
	for i, r := range recs {
		out[len(recs)-1-i] = r.Destination().Title()
	}
	return out
}

func (n *Navigator) emit(op, key string, depthBefore int) {
	logger.Logger.Infow("navigate",
		"op", op, "key", key, "depth", n.stack.Len())
	n.tracer.Operation(context.Background(), op,
		trace.AttrRecordKey.String(key),
		trace.AttrDepthBefore.Int(depthBefore),
		trace.AttrDepthAfter.Int(n.stack.Len()),
	)
}
