package model

import "fmt"

// MeshRenderer pairs the mesh and material an object is drawn with. Both
// are references: many objects can render the same mesh and material.
type MeshRenderer struct {
	Mesh     *Mesh
	Material *Material
}

// GameObject composes a mesh renderer with one owned transform. Objects
// carry a name so the scene can address them.
type GameObject struct {
	Name         string
	MeshRenderer MeshRenderer
	Transform    Transform
}

// NewGameObject builds an object from an existing mesh and material with a
// neutral transform.
func NewGameObject(name string, mesh *Mesh, material *Material) *GameObject {
	return &GameObject{
		Name:         name,
		MeshRenderer: MeshRenderer{Mesh: mesh, Material: material},
		Transform:    NewTransform(),
	}
}

// Clone copies the object prefab-style: the clone gets its own transform
// while mesh and material stay shared with the source.
func (g *GameObject) Clone(name string) *GameObject {
	c := *g
	c.Name = name
	return &c
}

// CloneN instantiates count clones of a prefab, named after it.
func CloneN(prefab *GameObject, count int) []*GameObject {
	gos := make([]*GameObject, count)
	for i := range gos {
		gos[i] = prefab.Clone(fmt.Sprintf("%s-%d", prefab.Name, i))
	}
	return gos
}
