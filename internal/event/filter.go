package event

// Filter decides whether a read or poll call considers an event a match.
// Filters are borrowed for the duration of a single call and never stored.
type Filter func(Event) bool

// FilterAll matches every event.
func FilterAll() Filter {
	return func(Event) bool {
		return true
	}
}

// FilterNone matches no event.
func FilterNone() Filter {
	return func(Event) bool {
		return false
	}
}

// FilterAnd combines filters with AND logic; all must match.
func FilterAnd(filters ...Filter) Filter {
	return func(ev Event) bool {
		for _, f := range filters {
			if !f(ev) {
				return false
			}
		}
		return true
	}
}

// FilterOr combines filters with OR logic; at least one must match.
func FilterOr(filters ...Filter) Filter {
	return func(ev Event) bool {
		for _, f := range filters {
			if f(ev) {
				return true
			}
		}
		return false
	}
}

// FilterNot negates a filter.
func FilterNot(f Filter) Filter {
	return func(ev Event) bool {
		return !f(ev)
	}
}

// FilterKeys matches key press events.
func FilterKeys() Filter {
	return func(ev Event) bool {
		_, ok := ev.(KeyEvent)
		return ok
	}
}

// FilterMouse matches mouse events.
func FilterMouse() Filter {
	return func(ev Event) bool {
		_, ok := ev.(MouseEvent)
		return ok
	}
}

// FilterResize matches terminal resize events.
func FilterResize() Filter {
	return func(ev Event) bool {
		_, ok := ev.(ResizeEvent)
		return ok
	}
}

// FilterPaste matches bracketed paste events.
func FilterPaste() Filter {
	return func(ev Event) bool {
		_, ok := ev.(PasteEvent)
		return ok
	}
}

// FilterCursorReply matches cursor-position replies. The cursor query protocol
// waits with exactly this filter so that ordinary input stays queued for the
// application.
func FilterCursorReply() Filter {
	return func(ev Event) bool {
		_, ok := ev.(CursorPositionEvent)
		return ok
	}
}

// FilterPublic matches every event an application should see, which is
// everything except cursor-position replies.
func FilterPublic() Filter {
	return FilterNot(FilterCursorReply())
}
