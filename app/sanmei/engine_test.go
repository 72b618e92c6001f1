package sanmei

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanmei/app/calendar"
	"sanmei/app/compat"
	"sanmei/app/star"
	"sanmei/config"
	"sanmei/selflogic"
)

func TestDestinyMemoized(t *testing.T) {
	e := New(star.Options{}, time.Minute)
	d := calendar.Date{Year: 1994, Month: 1, Day: 20}

	r1, err := e.Destiny(d, false)
	require.NoError(t, err)
	r2, err := e.Destiny(d, false)
	require.NoError(t, err)
	assert.Same(t, r1, r2)
	assert.Equal(t, 1, e.cache.ItemCount())
	assert.Equal(t, star.Ryukou, r1.CenterStar())
}

func TestDestinyTransformKeyedSeparately(t *testing.T) {
	e := New(star.Options{}, 0)
	d := calendar.Date{Year: 1997, Month: 2, Day: 26}

	plain, err := e.Destiny(d, false)
	require.NoError(t, err)
	tr, err := e.Destiny(d, true)
	require.NoError(t, err)

	assert.Equal(t, star.Kengyu, plain.CenterStar())
	assert.Equal(t, star.Sekimon, tr.CenterStar())
	assert.True(t, tr.Transformed)
	assert.Equal(t, 2, e.cache.ItemCount())
}

func TestDestinyOutOfRange(t *testing.T) {
	e := New(star.Options{}, time.Minute)
	_, err := e.Destiny(calendar.Date{Year: 2101, Month: 3, Day: 1}, false)
	assert.True(t, errors.Is(err, calendar.ErrYearOutOfRange))
	assert.Zero(t, e.cache.ItemCount())
}

func TestCompatibility(t *testing.T) {
	e := New(star.Options{Transform: true}, time.Minute)
	res, err := e.Compatibility(calendar.Date{Year: 1994, Month: 1, Day: 20}, calendar.Date{Year: 1997, Month: 2, Day: 26}, false)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, compat.TypeComplementary, res.Relationship.Type)
	assert.Equal(t, selflogic.Earth, res.DayStem.Person2)

	// 1997-02-26 年干丁月干壬合木，日干己化为乙
	res, err = e.Compatibility(calendar.Date{Year: 1994, Month: 1, Day: 20}, calendar.Date{Year: 1997, Month: 2, Day: 26}, true)
	require.NoError(t, err)
	assert.Equal(t, selflogic.Wood, res.DayStem.Person2)
	assert.Equal(t, selflogic.GeneratedBy, res.DayStem.Relation)

	_, err = e.Compatibility(calendar.Date{Year: 1994, Month: 1, Day: 20}, calendar.Date{Year: 1800, Month: 1, Day: 1}, false)
	assert.True(t, errors.Is(err, calendar.ErrYearOutOfRange))
}

func TestShareText(t *testing.T) {
	e := New(star.Options{}, time.Minute)
	r, err := e.Destiny(calendar.Date{Year: 1994, Month: 1, Day: 20}, false)
	require.NoError(t, err)
	assert.Equal(t, "【算命学診断結果】\n私の中心星は「龍高星」でした！\n\n#算命学 #占い #運勢診断", ShareText(r))

	c := &compat.Result{Score: 88, Relationship: compat.Classification{Type: compat.TypeSimilar}}
	assert.Equal(t, "相性診断結果: 88点（類似型）\n\n#算命学 #相性診断 #占い", CompatibilityShareText(c))
}

func TestFromConfig(t *testing.T) {
	e, err := FromConfig(&config.Config{Sanmei: config.Sanmei{Layout: "five", HiddenStems: "simple", Transform: true}})
	require.NoError(t, err)
	assert.Equal(t, star.Options{Transform: true, Layout: star.LayoutFive, HiddenStems: star.Simple}, e.Options())

	_, err = FromConfig(&config.Config{Sanmei: config.Sanmei{Layout: "seven"}})
	assert.True(t, errors.Is(err, star.ErrUnknownLayout))
	_, err = FromConfig(&config.Config{Sanmei: config.Sanmei{HiddenStems: "forty"}})
	assert.True(t, errors.Is(err, star.ErrUnknownModel))
}
