package handlers_test

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/domain/models"
	"github.com/warpmint/framepay/internal/render"
	"github.com/warpmint/framepay/internal/server/handlers"
)

type fakeCollectors struct {
	collectors []models.TopCollector
	err        error
}

func (f *fakeCollectors) TopCollectors(ctx context.Context, contract string, limit int) ([]models.TopCollector, error) {
	return f.collectors, f.err
}

func newImageRouter(userSvc *fakeUserService, collectors *fakeCollectors, reader *fakeChainReader) *gin.Engine {
	router := gin.New()
	h := handlers.NewImageHandler(userSvc, collectors, reader, testConfig(), zerolog.Nop())
	router.GET("/img/status/pending", h.StatusPending)
	router.GET("/img/color/:hex", h.Color)
	router.GET("/img/error", h.Error)
	router.GET("/img/leaderboard/:address", h.Leaderboard)
	return router
}

func getTree(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, render.Node) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var tree render.Node
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tree))
	return rec, tree
}

func TestColorRouteValidatesHex(t *testing.T) {
	router := newImageRouter(&fakeUserService{}, &fakeCollectors{}, &fakeChainReader{})

	rec, tree := getTree(t, router, "/img/color/ff8800")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEqual(t, render.ErrorMessage("Unknown color"), tree)

	rec, tree = getTree(t, router, "/img/color/nothex")
	require.Equal(t, http.StatusOK, rec.Code, "invalid input still renders a tree")
	require.Equal(t, render.ErrorMessage("Unknown color"), tree)
}

func TestErrorRouteEchoesMessage(t *testing.T) {
	router := newImageRouter(&fakeUserService{}, &fakeCollectors{}, &fakeChainReader{})

	_, tree := getTree(t, router, "/img/error?msg=Missing+transaction+hash")
	require.Equal(t, render.ErrorMessage("Missing transaction hash"), tree)

	_, tree = getTree(t, router, "/img/error")
	require.Equal(t, render.ErrorMessage("Something went wrong"), tree)
}

func TestLeaderboardNameFallbacks(t *testing.T) {
	userSvc := &fakeUserService{}
	collectors := &fakeCollectors{collectors: []models.TopCollector{
		{OwnerAddress: "0x1111111111111111111111111111111111111111", OwnerENSName: "alice.eth", TotalCopiesOwned: 12},
		{OwnerAddress: "0x2222222222222222222222222222222222222222", TotalCopiesOwned: 7},
	}}
	reader := &fakeChainReader{balance: big.NewInt(3)}
	router := newImageRouter(userSvc, collectors, reader)

	rec, tree := getTree(t, router, "/img/leaderboard/0xviewer")
	require.Equal(t, http.StatusOK, rec.Code)

	want := render.Leaderboard([]render.LeaderboardRow{
		{Rank: 1, Name: "alice.eth", Balance: 12},
		{Rank: 2, Name: "0x2222....2222", Balance: 7},
	}, "3")
	require.Equal(t, want, tree)
}

func TestLeaderboardDegradesWhenCollectorsUnavailable(t *testing.T) {
	router := newImageRouter(
		&fakeUserService{},
		&fakeCollectors{err: domain.ErrRemoteUnavailable},
		&fakeChainReader{},
	)

	rec, tree := getTree(t, router, "/img/leaderboard/0xviewer")
	require.Equal(t, http.StatusOK, rec.Code, "data failures must not break the image route")
	require.Equal(t, render.ErrorMessage("Leaderboard unavailable right now"), tree)
}
