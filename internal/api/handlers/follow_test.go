package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shelfshare/shelfshare-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type followKey struct {
	follower string
	followee string
}

type fakeFollowStore struct {
	edges  map[followKey]int
	nextID uint
}

func newFakeFollowStore() *fakeFollowStore {
	return &fakeFollowStore{edges: map[followKey]int{}}
}

func (f *fakeFollowStore) Follow(followerUsername, followeeUsername string) (uint, error) {
	f.nextID++
	f.edges[followKey{followerUsername, followeeUsername}]++
	return f.nextID, nil
}

func (f *fakeFollowStore) Unfollow(followerUsername, followeeUsername string) error {
	key := followKey{followerUsername, followeeUsername}
	if f.edges[key] == 0 {
		return utils.BadRequest("invalid unfollow request")
	}
	f.edges[key]--
	return nil
}

func followRouter(store FollowStore) *gin.Engine {
	router := newTestRouter()
	h := NewFollowHandler(store)
	router.POST("/follows", h.FollowUser)
	router.DELETE("/follows", h.UnfollowUser)
	return router
}

func TestFollowUser(t *testing.T) {
	router := followRouter(newFakeFollowStore())

	w := doJSON(t, router, http.MethodPost, "/follows", map[string]interface{}{
		"followerUsername": "alice",
		"followeeUsername": "bob",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["followerId"])
}

func TestFollowUserMissingFields(t *testing.T) {
	router := followRouter(newFakeFollowStore())

	w := doJSON(t, router, http.MethodPost, "/follows", map[string]interface{}{
		"followerUsername": "alice",
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, errorStatus(t, w))
}

func TestUnfollowRoundTrip(t *testing.T) {
	router := followRouter(newFakeFollowStore())

	payload := map[string]interface{}{
		"followerUsername": "alice",
		"followeeUsername": "bob",
	}

	for i := 0; i < 2; i++ {
		w := doJSON(t, router, http.MethodPost, "/follows", payload, nil)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, http.MethodDelete, "/follows", payload, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Unfollow successful", decodeBody(t, w)["message"])
	}
}

func TestUnfollowWithoutFollow(t *testing.T) {
	router := followRouter(newFakeFollowStore())

	w := doJSON(t, router, http.MethodDelete, "/follows", map[string]interface{}{
		"followerUsername": "alice",
		"followeeUsername": "bob",
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
