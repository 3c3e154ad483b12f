package archetypes

import (
	"github.com/automoto/parafall/components"
	cfg "github.com/automoto/parafall/config"
	"github.com/automoto/parafall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.Flash,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
		components.Body,
	)
	Cloud = newArchetype(
		tags.Cloud,
		components.Cloud,
		components.Tween,
	)
	Banner = newArchetype(
		components.Banner,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Run = newArchetype(
		components.Run,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
