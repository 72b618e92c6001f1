package selflogic

import "fmt"

// Element 五行
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

var elementNames = [...]string{"木", "火", "土", "金", "水"}

// Elements 按相生顺序
var Elements = []Element{Wood, Fire, Earth, Metal, Water}

func (e Element) Valid() bool {
	return e >= Wood && e <= Water
}

func (e Element) String() string {
	mustElement(e)
	return elementNames[e]
}

func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("selflogic: element %d out of range", int(e))
	}
	return []byte(elementNames[e]), nil
}

// Generates 我生
func (e Element) Generates() Element {
	mustElement(e)
	return (e + 1) % 5
}

// Restrains 我克
func (e Element) Restrains() Element {
	mustElement(e)
	return (e + 2) % 5
}

func mustElement(e Element) {
	if !e.Valid() {
		panic(fmt.Sprintf("selflogic: element %d out of range", int(e)))
	}
}

// Relation 五行生克关系，以第一个元素为主体
type Relation int

const (
	Same         Relation = iota // 比和
	Generates                    // 我生
	GeneratedBy                  // 生我
	Restrains                    // 我克
	RestrainedBy                 // 克我
)

var relationNames = [...]string{"比和", "我生", "生我", "我克", "克我"}

func (r Relation) String() string {
	if r < Same || r > RestrainedBy {
		panic(fmt.Sprintf("selflogic: relation %d out of range", int(r)))
	}
	return relationNames[r]
}

func (r Relation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

var relations = [5][5]Relation{
	Wood:  {Wood: Same, Fire: Generates, Earth: Restrains, Metal: RestrainedBy, Water: GeneratedBy},
	Fire:  {Fire: Same, Earth: Generates, Metal: Restrains, Water: RestrainedBy, Wood: GeneratedBy},
	Earth: {Earth: Same, Metal: Generates, Water: Restrains, Wood: RestrainedBy, Fire: GeneratedBy},
	Metal: {Metal: Same, Water: Generates, Wood: Restrains, Fire: RestrainedBy, Earth: GeneratedBy},
	Water: {Water: Same, Wood: Generates, Fire: Restrains, Earth: RestrainedBy, Metal: GeneratedBy},
}

// Relate 计算 a 对 b 的生克关系
func Relate(a, b Element) Relation {
	mustElement(a)
	mustElement(b)
	return relations[a][b]
}

// Polarity 阴阳
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) String() string {
	switch p {
	case Yang:
		return "陽"
	case Yin:
		return "陰"
	}
	panic(fmt.Sprintf("selflogic: polarity %d out of range", int(p)))
}

func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
