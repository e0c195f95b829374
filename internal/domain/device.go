package domain

type DeviceType string

const (
	DeviceConsole   DeviceType = "console"
	DeviceSimulator DeviceType = "simulator"
)

// Inventory describes the venue's fixed device park. Units are not
// created or destroyed at runtime.
type Inventory struct {
	ConsoleUnits         int
	SimulatorUnits       int
	PlayerCeiling        int
	MaxPlayersPerConsole int
}

func (i Inventory) ValidConsoleUnit(n int) bool {
	return n >= 1 && n <= i.ConsoleUnits
}

func (i Inventory) ValidSimulatorUnit(n int) bool {
	return n >= 1 && n <= i.SimulatorUnits
}

func (i Inventory) ConsoleUnitNumbers() []int {
	units := make([]int, 0, i.ConsoleUnits)
	for n := 1; n <= i.ConsoleUnits; n++ {
		units = append(units, n)
	}
	return units
}
