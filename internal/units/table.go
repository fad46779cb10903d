package units

// prefixes maps an SI metric prefix symbol to its scale factor. The table
// mirrors the standard 20-prefix ladder (yocto through yotta); "u" is kept
// as an ASCII-safe alias for micro ("µ") since expressions are typed on an
// ordinary keyboard.
var prefixes = map[string]float64{
	"Y": 1e24, "Z": 1e21, "E": 1e18, "P": 1e15, "T": 1e12,
	"G": 1e9, "M": 1e6, "k": 1e3, "h": 1e2, "da": 1e1,
	"d": 1e-1, "c": 1e-2, "m": 1e-3, "u": 1e-6, "µ": 1e-6,
	"n": 1e-9, "p": 1e-12, "f": 1e-15, "a": 1e-18, "z": 1e-21,
	"y": 1e-24,
}

// entry is a single row of the fixed unit table: the symbol's scale/offset
// and dimensional signature.
type entry struct {
	scale    Scale
	quantity Quantity
}

// baseUnits are the unprefixed symbols the registry resolves directly,
// before any prefix stripping is attempted. Grouping base SI units and
// common non-SI derived/compatibility units (mi, h, bar, eV, ...) in one
// table keeps Lookup a single map probe in the common case.
var baseUnits = map[string]entry{
	// SI base units
	"s":   {Scale{Factor: 1}, QuantityTime},
	"m":   {Scale{Factor: 1}, QuantityLength},
	"g":   {Scale{Factor: 1e-3}, Quantity{Mass: 1}}, // kg is the coherent SI unit; "g" is the prefixable base symbol
	"A":   {Scale{Factor: 1}, Quantity{Current: 1}},
	"K":   {Scale{Factor: 1}, QuantityTemperature},
	"mol": {Scale{Factor: 1}, Quantity{Amount: 1}},
	"cd":  {Scale{Factor: 1}, Quantity{Luminosity: 1}},

	// SI derived units with their own (prefixable) coherent symbol
	"Hz": {Scale{Factor: 1}, Quantity{Time: -1}},
	"N":  {Scale{Factor: 1}, Quantity{Mass: 1, Length: 1, Time: -2}},
	"Pa": {Scale{Factor: 1}, Quantity{Mass: 1, Length: -1, Time: -2}},
	"J":  {Scale{Factor: 1}, Quantity{Mass: 1, Length: 2, Time: -2}},
	"W":  {Scale{Factor: 1}, Quantity{Mass: 1, Length: 2, Time: -3}},
	"C":  {Scale{Factor: 1}, Quantity{Current: 1, Time: 1}},
	"V":  {Scale{Factor: 1}, Quantity{Mass: 1, Length: 2, Time: -3, Current: -1}},
	"F":  {Scale{Factor: 1}, Quantity{Mass: -1, Length: -2, Time: 4, Current: 2}},
	"ohm": {Scale{Factor: 1}, Quantity{Mass: 1, Length: 2, Time: -3, Current: -2}},
	"Ω":  {Scale{Factor: 1}, Quantity{Mass: 1, Length: 2, Time: -3, Current: -2}},
	"S":  {Scale{Factor: 1}, Quantity{Mass: -1, Length: -2, Time: 3, Current: 2}},
	"Wb": {Scale{Factor: 1}, Quantity{Mass: 1, Length: 2, Time: -2, Current: -1}},
	"T":  {Scale{Factor: 1}, Quantity{Mass: 1, Time: -2, Current: -1}},
	"H":  {Scale{Factor: 1}, Quantity{Mass: 1, Length: 2, Time: -2, Current: -2}},
	"lm": {Scale{Factor: 1}, Quantity{Luminosity: 1}},
	"lx": {Scale{Factor: 1}, Quantity{Luminosity: 1, Length: -2}},
	"Bq": {Scale{Factor: 1}, Quantity{Time: -1}},
	"Gy": {Scale{Factor: 1}, Quantity{Length: 2, Time: -2}},
	"Sv": {Scale{Factor: 1}, Quantity{Length: 2, Time: -2}},
	"kat": {Scale{Factor: 1}, Quantity{Amount: 1, Time: -1}},

	// Dimensionless plane/solid angle (SI treats rad and sr as dimensionless)
	"rad": {Scale{Factor: 1}, Dimensionless},
	"sr":  {Scale{Factor: 1}, Dimensionless},
	"deg": {Scale{Factor: 0.017453292519943295}, Dimensionless},
	"°":   {Scale{Factor: 0.017453292519943295}, Dimensionless},

	// Common non-SI units accepted by name, not composed from a prefix+base
	"min": {Scale{Factor: 60}, QuantityTime},
	"h":   {Scale{Factor: 3600}, QuantityTime},
	"day": {Scale{Factor: 86400}, QuantityTime},
	"l":   {Scale{Factor: 1e-3}, Quantity{Length: 3}},
	"L":   {Scale{Factor: 1e-3}, Quantity{Length: 3}},
	"t":   {Scale{Factor: 1e3}, Quantity{Mass: 1}},
	"eV":  {Scale{Factor: 1.602176634e-19}, Quantity{Mass: 1, Length: 2, Time: -2}},
	"bar": {Scale{Factor: 1e5}, Quantity{Mass: 1, Length: -1, Time: -2}},
	"atm": {Scale{Factor: 101325}, Quantity{Mass: 1, Length: -1, Time: -2}},
	"mi":  {Scale{Factor: 1609.344}, QuantityLength},
	"ft":  {Scale{Factor: 0.3048}, QuantityLength},
	"in":  {Scale{Factor: 0.0254}, QuantityLength},
	"lb":  {Scale{Factor: 0.45359237}, Quantity{Mass: 1}},

	// Affine (offset-bearing) temperature units: literals built from these
	// carry Absolute kind per spec.
	"°C": {Scale{Factor: 1, Offset: 273.15}, QuantityTemperature},
	"°F": {Scale{Factor: 5.0 / 9.0, Offset: 255.3722222222222}, QuantityTemperature},
}

// prefixable lists the base symbols that accept an SI metric prefix. Not
// every baseUnits entry is prefixable (e.g. "min", "mi", "°C" are not);
// this mirrors how real unit tables restrict prefixing to coherent SI
// symbols.
var prefixable = map[string]bool{
	"s": true, "m": true, "g": true, "A": true, "K": true, "mol": true, "cd": true,
	"Hz": true, "N": true, "Pa": true, "J": true, "W": true, "C": true, "V": true,
	"F": true, "ohm": true, "Ω": true, "S": true, "Wb": true, "T": true, "H": true,
	"lm": true, "lx": true, "Bq": true, "Gy": true, "Sv": true, "kat": true, "l": true, "L": true,
}
