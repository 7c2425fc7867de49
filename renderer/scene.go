package renderer

import (
	"fmt"

	"GL_render_sandbox/model"
)

// These functions are part of the rendering core but are split into their
// own file for logical separation. Their focus is scene handling: adding,
// removing and looking up the objects the loop draws. In the future this
// could grow into a proper scene tree.

// AddToScene appends an object to the draw list. Draw order is list order;
// there is no sorting, batching or culling. The object's mesh is uploaded
// on first use, shared meshes only once.
func (c *Core) AddToScene(obj *model.GameObject) {
	obj.MeshRenderer.Mesh.Upload()
	c.objects = append(c.objects, obj)
}

// AddAllToScene appends several objects in the given order.
func (c *Core) AddAllToScene(objs ...*model.GameObject) {
	for _, o := range objs {
		c.AddToScene(o)
	}
}

// FindInScene looks an object up by name. Comparison is done naively by
// name until more sophisticated methods are required.
func (c *Core) FindInScene(name string) (*model.GameObject, error) {
	for i, o := range c.objects {
		if o.Name == name {
			return c.objects[i], nil
		}
	}
	return nil, fmt.Errorf("object '%s' not found", name)
}

// RemoveFromScene drops an object from the draw list by name. The GPU
// buffers of its mesh stay alive: they may be shared and are only reclaimed
// at process exit.
func (c *Core) RemoveFromScene(obj *model.GameObject) {
	for i, o := range c.objects {
		if o.Name == obj.Name {
			c.objects = append(c.objects[:i], c.objects[i+1:]...)
			return
		}
	}
}

// ClearScene empties the draw list.
func (c *Core) ClearScene() {
	c.objects = nil
}
