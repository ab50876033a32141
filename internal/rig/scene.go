package rig

import "fmt"

// Object finds an object by name
func (s *Scene) Object(name string) *Object {
	if name == "" {
		return nil
	}
	for i := range s.Objects {
		if s.Objects[i].Name == name {
			return &s.Objects[i]
		}
	}
	return nil
}

// ActiveObject returns the active object, or nil if nothing is active
func (s *Scene) ActiveObject() *Object {
	return s.Object(s.Active)
}

// ActiveArmature returns the active object if it is an armature
func (s *Scene) ActiveArmature() *Object {
	obj := s.ActiveObject()
	if !obj.IsArmature() {
		return nil
	}
	return obj
}

// ResolveArmature finds the armature an operation should act on: the active
// object, then the active object's parent, then the first selected armature.
func (s *Scene) ResolveArmature() *Object {
	if active := s.ActiveObject(); active != nil {
		if active.IsArmature() {
			return active
		}
		if parent := s.Object(active.Parent); parent.IsArmature() {
			return parent
		}
	}

	for i := range s.Objects {
		obj := &s.Objects[i]
		if obj.Selected && obj.IsArmature() {
			return obj
		}
	}
	return nil
}

// Armatures returns every armature object in scene order
func (s *Scene) Armatures() []*Object {
	var out []*Object
	for i := range s.Objects {
		if s.Objects[i].IsArmature() {
			out = append(out, &s.Objects[i])
		}
	}
	return out
}

// IsArmature reports whether the object is an armature with skeleton data.
// Safe to call on a nil object.
func (o *Object) IsArmature() bool {
	return o != nil && o.Type == TypeArmature && o.Armature != nil
}

// RigName returns the object name
func (o *Object) RigName() string {
	return o.Name
}

// ListBones returns bone names in armature order
func (o *Object) ListBones() []string {
	if o.Armature == nil {
		return nil
	}
	names := make([]string, 0, len(o.Armature.Bones))
	for _, b := range o.Armature.Bones {
		names = append(names, b.Name)
	}
	return names
}

// SetCollections drops every existing collection (and with it every bone
// membership) and installs the given ones in order.
func (o *Object) SetCollections(collections []Collection) error {
	if o.Armature == nil {
		return fmt.Errorf("object '%s' has no armature data", o.Name)
	}

	known := make(map[string]bool, len(o.Armature.Bones))
	for _, b := range o.Armature.Bones {
		known[b.Name] = true
	}

	names := make(map[string]bool, len(collections))
	fresh := make([]Collection, 0, len(collections))
	for _, c := range collections {
		if names[c.Name] {
			return fmt.Errorf("duplicate collection '%s'", c.Name)
		}
		names[c.Name] = true

		for _, b := range c.Bones {
			if !known[b] {
				return fmt.Errorf("collection '%s' references unknown bone '%s'", c.Name, b)
			}
		}

		fresh = append(fresh, Collection{
			Name:    c.Name,
			Visible: c.Visible,
			Bones:   append([]string(nil), c.Bones...),
		})
	}

	o.Armature.Collections = fresh
	return nil
}

// Position returns the armature's pose position, defaulting to POSE
func (o *Object) Position() PosePosition {
	if o.Armature == nil || o.Armature.Pose == "" {
		return PosePose
	}
	return o.Armature.Pose
}

// SetPosition sets the armature's pose position
func (o *Object) SetPosition(p PosePosition) {
	if o.Armature == nil {
		return
	}
	o.Armature.Pose = p
}

// CollectionsOf returns the names of the collections a bone belongs to
func (o *Object) CollectionsOf(bone string) []string {
	if o.Armature == nil {
		return nil
	}
	var out []string
	for _, c := range o.Armature.Collections {
		for _, b := range c.Bones {
			if b == bone {
				out = append(out, c.Name)
				break
			}
		}
	}
	return out
}
