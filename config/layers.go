package config

import "github.com/yohamta/donburi/ecs"

// LayerDefault is the render layer shared by all draw systems.
const LayerDefault = ecs.LayerDefault
