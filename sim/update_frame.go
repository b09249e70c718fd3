package sim

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	World     *World
	Impacts   []Impact
}

func newUpdateFrame(dt float64, world *World, commands *Commands) *UpdateFrame {
	if commands == nil {
		commands = newCommands()
	}
	return &UpdateFrame{
		DeltaTime: world.Params.clampDelta(dt),
		Commands:  commands,
		World:     world,
	}
}
