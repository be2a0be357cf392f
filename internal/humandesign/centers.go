package humandesign

// Channel joins two gates; when both gates are active the channel is defined
// and so are the centers at either end.
type Channel struct {
	GateA int
	GateB int
}

// channels lists the 36 channels of the body graph.
var channels = []Channel{
	{1, 8}, {2, 14}, {3, 60}, {4, 63}, {5, 15}, {6, 59},
	{7, 31}, {9, 52}, {10, 20}, {10, 34}, {10, 57}, {11, 56},
	{12, 22}, {13, 33}, {16, 48}, {17, 62}, {18, 58}, {19, 49},
	{20, 34}, {20, 57}, {21, 45}, {23, 43}, {24, 61}, {25, 51},
	{26, 44}, {27, 50}, {28, 38}, {29, 46}, {30, 41}, {32, 54},
	{34, 57}, {35, 36}, {37, 40}, {39, 55}, {42, 53}, {47, 64},
}

// Center names in a stable presentation order.
const (
	CenterHead        = "Head"
	CenterAjna        = "Ajna"
	CenterThroat      = "Throat"
	CenterG           = "G"
	CenterHeart       = "Heart"
	CenterSacral      = "Sacral"
	CenterSpleen      = "Spleen"
	CenterSolarPlexus = "Solar Plexus"
	CenterRoot        = "Root"
)

// centerOrder fixes iteration order so derived lists are deterministic.
var centerOrder = []string{
	CenterHead, CenterAjna, CenterThroat, CenterG, CenterHeart,
	CenterSacral, CenterSpleen, CenterSolarPlexus, CenterRoot,
}

// centerGates assigns every gate to its center.
var centerGates = map[string][]int{
	CenterHead:        {64, 61, 63},
	CenterAjna:        {47, 24, 4, 17, 43, 11},
	CenterThroat:      {62, 23, 56, 35, 12, 45, 33, 8, 31, 20, 16},
	CenterG:           {1, 13, 25, 46, 2, 15, 10, 7},
	CenterHeart:       {21, 40, 26, 51},
	CenterSacral:      {34, 5, 14, 29, 59, 9, 3, 42, 27},
	CenterSpleen:      {48, 57, 44, 50, 32, 28, 18},
	CenterSolarPlexus: {36, 22, 37, 6, 49, 55, 30},
	CenterRoot:        {53, 60, 52, 19, 39, 41, 58, 38, 54},
}

// motorCenters are the four energy-generating centers.
var motorCenters = map[string]bool{
	CenterSacral:      true,
	CenterHeart:       true,
	CenterSolarPlexus: true,
	CenterRoot:        true,
}

// gateCenter is the inverse of centerGates, built once.
var gateCenter = func() map[int]string {
	m := make(map[int]string, 64)
	for _, center := range centerOrder {
		for _, gate := range centerGates[center] {
			m[gate] = center
		}
	}
	return m
}()

// CenterForGate returns the center a gate belongs to.
func CenterForGate(gate int) string {
	return gateCenter[gate]
}

// definedChannels returns the channels whose both gates appear in the active
// set, in table order.
func definedChannels(active map[int]bool) []Channel {
	var defined []Channel
	for _, ch := range channels {
		if active[ch.GateA] && active[ch.GateB] {
			defined = append(defined, ch)
		}
	}
	return defined
}

// definedCenters returns the centers touched by any defined channel, in
// presentation order.
func definedCenters(defined []Channel) []string {
	touched := make(map[string]bool)
	for _, ch := range defined {
		touched[gateCenter[ch.GateA]] = true
		touched[gateCenter[ch.GateB]] = true
	}
	var centers []string
	for _, center := range centerOrder {
		if touched[center] {
			centers = append(centers, center)
		}
	}
	return centers
}

// connectedToThroat reports whether any of the wanted centers reaches the
// Throat through the defined-channel graph.
func connectedToThroat(defined []Channel, wanted map[string]bool) bool {
	adjacent := make(map[string][]string)
	for _, ch := range defined {
		a, b := gateCenter[ch.GateA], gateCenter[ch.GateB]
		if a == b {
			continue
		}
		adjacent[a] = append(adjacent[a], b)
		adjacent[b] = append(adjacent[b], a)
	}

	seen := map[string]bool{CenterThroat: true}
	queue := []string{CenterThroat}
	for len(queue) > 0 {
		center := queue[0]
		queue = queue[1:]
		if wanted[center] {
			return true
		}
		for _, next := range adjacent[center] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
