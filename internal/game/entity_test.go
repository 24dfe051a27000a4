package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocateReusesLowestFreeSlot(t *testing.T) {
	g := newBareGame()

	a, err := g.Allocate(Entity{Kind: KindGeneric})
	require.NoError(t, err)
	b, err := g.Allocate(Entity{Kind: KindGeneric})
	require.NoError(t, err)
	c, err := g.Allocate(Entity{Kind: KindGeneric})
	require.NoError(t, err)
	require.Equal(t, 0, a)
	require.Equal(t, 1, b)
	require.Equal(t, 2, c)

	g.Destroy(b)
	require.Nil(t, g.Entity(b))

	d, err := g.Allocate(Entity{Kind: KindGeneric})
	require.NoError(t, err)
	require.Equal(t, b, d, "freed slot is reused before fresh ones")
	require.Equal(t, 3, g.ActiveCount())
}

func TestAllocateNormalizesTemplate(t *testing.T) {
	g := newBareGame()

	id, err := g.Allocate(Entity{Kind: KindPlayer})
	require.NoError(t, err)
	e := g.Entity(id)
	require.NotNil(t, e)
	require.Equal(t, 1.0, e.Alpha)
	require.Equal(t, NoEntity, e.Holding)
	require.Equal(t, id, e.ID)
}

func TestAllocateRegistersCollider(t *testing.T) {
	g := newBareGame()

	id, err := g.Allocate(Entity{
		Kind:     KindGeneric,
		Size:     Vec2{X: 40, Y: 40},
		Collider: CircleCollider(20, MaskTerrain),
	})
	require.NoError(t, err)
	require.True(t, g.Sets[MaskTerrain].Contains(id))

	g.Destroy(id)
	require.False(t, g.Sets[MaskTerrain].Contains(id), "destroy drops the id from its mask set")
	require.Equal(t, 0, g.Sets[MaskTerrain].Len())
}

func TestAllocateExhaustion(t *testing.T) {
	g := newBareGame()
	for i := 0; i < MaxEntities; i++ {
		_, err := g.Allocate(Entity{Kind: KindGeneric})
		require.NoError(t, err)
	}

	id, err := g.Allocate(Entity{Kind: KindGeneric})
	require.ErrorIs(t, err, ErrEntitiesFull)
	require.Equal(t, NoEntity, id)

	g.Destroy(17)
	id, err = g.Allocate(Entity{Kind: KindGeneric})
	require.NoError(t, err)
	require.Equal(t, 17, id)
}

func TestDestroyIsIdempotent(t *testing.T) {
	g := newBareGame()
	id, err := g.Allocate(Entity{Kind: KindGeneric, Collider: CircleCollider(10, MaskPlayer), Size: Vec2{X: 20, Y: 20}})
	require.NoError(t, err)

	g.Destroy(id)
	g.Destroy(id)
	g.Destroy(NoEntity)
	g.Destroy(MaxEntities)
	require.Equal(t, 0, g.ActiveCount())
	require.Equal(t, 0, g.Sets[MaskPlayer].Len())
}

func TestEntityLookupRejectsStaleAndBogusIDs(t *testing.T) {
	g := newBareGame()
	id, err := g.Allocate(Entity{Kind: KindDish, Dish: DishSoup})
	require.NoError(t, err)
	require.NotNil(t, g.Entity(id))

	g.Destroy(id)
	require.Nil(t, g.Entity(id))
	require.Nil(t, g.Entity(NoEntity))
	require.Nil(t, g.Entity(MaxEntities))
}

func TestEachOfKindVisitsInSlotOrder(t *testing.T) {
	g := newBareGame()
	_, err := g.Allocate(Entity{Kind: KindIngredient, Ingredient: IngredientRed})
	require.NoError(t, err)
	_, err = g.Allocate(Entity{Kind: KindDish})
	require.NoError(t, err)
	second, err := g.Allocate(Entity{Kind: KindIngredient, Ingredient: IngredientBlue})
	require.NoError(t, err)

	var seen []int
	g.EachOfKind(KindIngredient, func(id int, e *Entity) {
		seen = append(seen, id)
		require.Equal(t, KindIngredient, e.Kind)
	})
	require.Equal(t, []int{0, second}, seen)
}
