package js

// InjectEventOptions appends the conventional listener options
// parameter to every event member. The pass only applies when at least
// one aggregated class was defined in the legacy style, since only the
// legacy event system passes the options object to handlers.
func InjectEventOptions(classes []*Class) {
	if !anyLegacy(classes) {
		return
	}
	for _, cls := range classes {
		for _, ev := range cls.Members[TagEvent] {
			if hasOptionsParam(ev) {
				continue
			}
			opt := NewMember(TagParam, "options")
			opt.Type = "Object"
			opt.Doc = "The options object passed to the listener registration."
			ev.Params = append(ev.Params, opt)
		}
	}
}

func anyLegacy(classes []*Class) bool {
	for _, cls := range classes {
		if cls.LegacyInit {
			return true
		}
	}
	return false
}

func hasOptionsParam(ev *Member) bool {
	if len(ev.Params) == 0 {
		return false
	}
	return ev.Params[len(ev.Params)-1].Name == "options"
}
