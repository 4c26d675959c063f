package bamboo

import "github.com/vovakirdan/bamboo-breakout/internal/core"

// Pair is an ordered pair of categories with Low <= High.
type Pair struct {
	Low, High Category
}

// MakePair orders two categories canonically.
func MakePair(a, b Category) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{Low: a, High: b}
}

// String returns "low/high".
func (p Pair) String() string {
	return p.Low.String() + "/" + p.High.String()
}

// Well-known pairs the rule engine reacts to.
var (
	PairBallBorder = Pair{CategoryBall, CategoryBorder}
	PairBallPaddle = Pair{CategoryBall, CategoryPaddle}
	PairBallBottom = Pair{CategoryBall, CategoryBottom}
	PairBallBlock  = Pair{CategoryBall, CategoryBlock}
)

// CollisionEvent is a classified contact. First holds the entity of the
// Low category and Second the entity of the High category.
type CollisionEvent struct {
	Pair   Pair
	First  *Entity
	Second *Entity
	Point  core.Vec
}

// Classify orders two touching entities by category. Entities of the same
// category are ordered by ID, so Classify(a, b) == Classify(b, a).
func Classify(a, b *Entity, point core.Vec) CollisionEvent {
	if b.Category < a.Category || (b.Category == a.Category && b.ID < a.ID) {
		a, b = b, a
	}
	return CollisionEvent{
		Pair:   Pair{Low: a.Category, High: b.Category},
		First:  a,
		Second: b,
		Point:  point,
	}
}
