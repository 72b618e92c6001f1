package selflogic

// CycleLen 六十甲子
const CycleLen = 60

var cycle [CycleLen]Pillar

func init() {
	for i := 0; i < CycleLen; i++ {
		cycle[i] = Pillar{Stem: Stem(i % 10), Branch: Branch(i % 12)}
	}
}

// Normalize 归一到 [0,60)
func Normalize(n int) int {
	return ((n % CycleLen) + CycleLen) % CycleLen
}

// PillarAt 任意整数都先归一再查表
func PillarAt(n int) Pillar {
	return cycle[Normalize(n)]
}

// Cycle 返回六十甲子的副本
func Cycle() []Pillar {
	out := make([]Pillar, CycleLen)
	copy(out, cycle[:])
	return out
}
