package js

import "fmt"

// orphanPool buffers members that could not be attached to a class yet,
// either because their explicit owner has not been declared or because
// they appeared before any class in their source unit.
type orphanPool struct {
	members []*Member
}

// register attaches a member to its class when possible, otherwise
// pools it. current is the most recently registered class of the
// member's source unit and adopts members without an explicit owner.
func (p *orphanPool) register(m *Member, r *Registry, current *Class) error {
	if m.Tag == "" {
		return fmt.Errorf("member %q has no tag", m.Name)
	}
	if m.Owner != "" {
		if cls := r.Get(m.Owner); cls != nil {
			cls.Add(m)
			return nil
		}
		p.members = append(p.members, m)
		return nil
	}
	if current != nil {
		current.Add(m)
		return nil
	}
	p.members = append(p.members, m)
	return nil
}

// drainFor moves every pooled member owned by cls into it. Called right
// after a class is newly registered so forward references resolve as
// soon as the owner appears.
func (p *orphanPool) drainFor(cls *Class) {
	kept := p.members[:0]
	for _, m := range p.members {
		if m.Owner == cls.Name {
			cls.Add(m)
			continue
		}
		kept = append(kept, m)
	}
	p.members = kept
}

// resolveNamed creates a placeholder class for every pooled member that
// carries an explicit owner. A single traversal suffices: registering a
// placeholder immediately drains all pooled members with that owner,
// including the one currently being looked at.
func (p *orphanPool) resolveNamed(r *Registry) {
	for _, m := range append([]*Member(nil), p.members...) {
		if m.Owner == "" || !p.contains(m) {
			continue
		}
		cls, created := r.Placeholder(m.Owner, "")
		if created {
			p.drainFor(cls)
			continue
		}
		// The owner was registered while this member sat in the
		// pool; attach directly.
		cls.Add(m)
		p.remove(m)
	}
}

func (p *orphanPool) contains(m *Member) bool {
	for _, o := range p.members {
		if o == m {
			return true
		}
	}
	return false
}

func (p *orphanPool) remove(m *Member) {
	for i, o := range p.members {
		if o == m {
			p.members = append(p.members[:i], p.members[i+1:]...)
			return
		}
	}
}

// resolveAnonymous assigns every remaining pooled member to the global
// bucket class. No class is created when the pool is already empty.
func (p *orphanPool) resolveAnonymous(r *Registry) {
	if len(p.members) == 0 {
		return
	}
	cls, _ := r.Placeholder(GlobalClassName, GlobalClassDoc)
	for _, m := range p.members {
		cls.Add(m)
	}
	p.members = nil
}
