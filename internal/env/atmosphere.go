package env

// Standard atmosphere by altitude in meters, and the drag curve of an M795
// 155mm shell by Mach number.
var (
	gravityTable = MustTable(
		Mapping{0, 9.807}, Mapping{1000, 9.804}, Mapping{2000, 9.801}, Mapping{3000, 9.797},
		Mapping{4000, 9.794}, Mapping{5000, 9.791}, Mapping{6000, 9.788}, Mapping{7000, 9.785},
		Mapping{8000, 9.782}, Mapping{9000, 9.779}, Mapping{10000, 9.776}, Mapping{15000, 9.761},
		Mapping{20000, 9.745}, Mapping{25000, 9.730},
	)

	densityTable = MustTable(
		Mapping{0, 1.2250000}, Mapping{1000, 1.1120000}, Mapping{2000, 1.0070000}, Mapping{3000, 0.9093000},
		Mapping{4000, 0.8194000}, Mapping{5000, 0.7364000}, Mapping{6000, 0.6601000}, Mapping{7000, 0.5900000},
		Mapping{8000, 0.5258000}, Mapping{9000, 0.4671000}, Mapping{10000, 0.4135000}, Mapping{15000, 0.1948000},
		Mapping{20000, 0.0889100}, Mapping{25000, 0.0400800}, Mapping{30000, 0.0184100}, Mapping{40000, 0.0039960},
		Mapping{50000, 0.0010270}, Mapping{60000, 0.0003097}, Mapping{70000, 0.0000828}, Mapping{80000, 0.0000185},
	)

	soundTable = MustTable(
		Mapping{0, 340}, Mapping{1000, 336}, Mapping{2000, 332}, Mapping{3000, 328},
		Mapping{4000, 324}, Mapping{5000, 320}, Mapping{6000, 316}, Mapping{7000, 312},
		Mapping{8000, 308}, Mapping{9000, 303}, Mapping{10000, 299}, Mapping{15000, 295},
		Mapping{20000, 295}, Mapping{25000, 295}, Mapping{30000, 305}, Mapping{40000, 324},
	)

	dragTable = MustTable(
		Mapping{0.300, 0.1629}, Mapping{0.500, 0.1659}, Mapping{0.700, 0.2031}, Mapping{0.890, 0.2597},
		Mapping{0.920, 0.3010}, Mapping{0.960, 0.3287}, Mapping{0.980, 0.4002}, Mapping{1.000, 0.4258},
		Mapping{1.020, 0.4335}, Mapping{1.060, 0.4483}, Mapping{1.240, 0.4064}, Mapping{1.530, 0.3663},
		Mapping{1.990, 0.2897}, Mapping{2.870, 0.2297}, Mapping{2.890, 0.2306}, Mapping{5.000, 0.2656},
	)
)

// GravityFromAltitude returns gravitational acceleration in m/s².
func GravityFromAltitude(altitude float64) float64 { return gravityTable.Lookup(altitude) }

// DensityFromAltitude returns air density in kg/m³.
func DensityFromAltitude(altitude float64) float64 { return densityTable.Lookup(altitude) }

// SpeedOfSoundFromAltitude returns the speed of sound in m/s.
func SpeedOfSoundFromAltitude(altitude float64) float64 { return soundTable.Lookup(altitude) }

// DragFromMach returns the drag coefficient of the shell at speedMach.
func DragFromMach(speedMach float64) float64 { return dragTable.Lookup(speedMach) }
