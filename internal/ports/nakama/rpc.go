package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"riichi/internal/app"
	"riichi/internal/config"
	"riichi/internal/domain"
)

// Request payloads. Tiles travel as catalog ids.

type EvaluateHandRequest struct {
	Hand              []string `json:"hand"`
	WinningTileID     string   `json:"winning_tile"`
	DoraIndicators    []string `json:"dora_indicators"`
	UraDoraIndicators []string `json:"ura_dora_indicators"`
	PrevalentWind     string   `json:"prevalent_wind"`
	SeatWind          string   `json:"seat_wind"`

	IsTsumo              bool `json:"is_tsumo"`
	IsRiichi             bool `json:"is_riichi"`
	IsDoubleRiichi       bool `json:"is_double_riichi"`
	IsClosed             bool `json:"is_closed"`
	IsDealer             bool `json:"is_dealer"`
	IsFirstTurnWin       bool `json:"is_first_turn_win"`
	IsFirstTurnForPlayer bool `json:"is_first_turn_for_player"`

	RemainingTiles int `json:"remaining_tiles"`
}

type MatchNewRequest struct {
	Players []string `json:"players"`
}

type DoraIndicatorRequest struct {
	DoraIndicatorID string `json:"dora_indicator_id"`
}

type FinishRoundRequest struct {
	Winner  string `json:"winner"`
	WinType string `json:"win_type"`
	Loser   string `json:"loser,omitempty"`
	Points  int    `json:"points"`
}

type UpdateNamesRequest struct {
	Players []string `json:"players"`
}

type ParseDetectionsRequest struct {
	Detections []domain.Detection `json:"detections"`
}

// Response payloads.

type MatchStateResponse struct {
	Match  *domain.Snapshot `json:"match"`
	Events []app.Event      `json:"events,omitempty"`
}

type FinishMatchResponse struct {
	Ranking []domain.GameRanking `json:"ranking"`
	Match   *domain.Snapshot     `json:"match"`
}

type MatchHistoryResponse struct {
	History     []domain.GameHistoryEntry `json:"history"`
	LastRanking []domain.GameRanking      `json:"last_ranking,omitempty"`
}

type ParseDetectionsResponse struct {
	TileIDs []string `json:"tile_ids"`
}

// RegisterRPCs registers all riichi RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	handlers := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcEvaluateHand:     rpcEvaluateHand,
		RpcMatchNew:         rpcMatchNew,
		RpcMatchStartRound:  rpcMatchStartRound,
		RpcMatchKan:         rpcMatchKan,
		RpcMatchFinishRound: rpcMatchFinishRound,
		RpcMatchFinish:      rpcMatchFinish,
		RpcMatchReset:       rpcMatchReset,
		RpcMatchState:       rpcMatchState,
		RpcMatchHistory:     rpcMatchHistory,
		RpcMatchUpdateNames: rpcMatchUpdateNames,
		RpcParseDetections:  rpcParseDetections,
	}
	for id, handler := range handlers {
		if err := initializer.RegisterRpc(id, handler); err != nil {
			return fmt.Errorf("failed to register rpc %s: %w", id, err)
		}
	}
	return nil
}

// serviceFor builds a Service bound to the calling user's storage.
func serviceFor(ctx context.Context, nk runtime.NakamaModule) *app.Service {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	store := NewNakamaStorageAdapter(nk, userID)
	return app.NewService(store, config.GetGameConfig())
}

// loadedServiceFor builds a Service and resumes the caller's saved match.
func loadedServiceFor(ctx context.Context, nk runtime.NakamaModule) (*app.Service, error) {
	svc := serviceFor(ctx, nk)
	ok, err := svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, app.ErrNoMatch
	}
	return svc, nil
}

func resolveTiles(ids []string) ([]domain.Tile, error) {
	tiles := make([]domain.Tile, 0, len(ids))
	for _, id := range ids {
		t, ok := domain.TileByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTileID, id)
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

func respond(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}
	return string(b), nil
}

func rpcEvaluateHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req EvaluateHandRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal evaluate_hand request: %w", err)
	}

	hand, err := resolveTiles(req.Hand)
	if err != nil {
		return "", err
	}
	doraIndicators, err := resolveTiles(req.DoraIndicators)
	if err != nil {
		return "", err
	}
	uraDoraIndicators, err := resolveTiles(req.UraDoraIndicators)
	if err != nil {
		return "", err
	}
	winningTile, ok := domain.TileByID(req.WinningTileID)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownTileID, req.WinningTileID)
	}
	prevalentWind, ok := domain.ParseWind(req.PrevalentWind)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownWind, req.PrevalentWind)
	}
	seatWind, ok := domain.ParseWind(req.SeatWind)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownWind, req.SeatWind)
	}

	svc := serviceFor(ctx, nk)
	result, err := svc.EvaluateHand(domain.EvaluateInput{
		Hand:                 hand,
		DoraIndicators:       doraIndicators,
		UraDoraIndicators:    uraDoraIndicators,
		PrevalentWind:        prevalentWind,
		SeatWind:             seatWind,
		WinningTile:          winningTile,
		IsTsumo:              req.IsTsumo,
		IsRiichi:             req.IsRiichi,
		IsDoubleRiichi:       req.IsDoubleRiichi,
		IsClosed:             req.IsClosed,
		IsDealer:             req.IsDealer,
		IsFirstTurnWin:       req.IsFirstTurnWin,
		IsFirstTurnForPlayer: req.IsFirstTurnForPlayer,
		RemainingTiles:       req.RemainingTiles,
	})
	if err != nil {
		logger.Warn("evaluate_hand rejected: %v", err)
		return "", err
	}
	return respond(result)
}

func rpcMatchNew(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req MatchNewRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal match_new request: %w", err)
	}

	svc := serviceFor(ctx, nk)
	events, err := svc.NewMatch(ctx, req.Players)
	if err != nil {
		logger.Warn("match_new rejected: %v", err)
		return "", err
	}
	return respondState(svc, events)
}

func rpcMatchStartRound(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req DoraIndicatorRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal match_start_round request: %w", err)
	}

	svc, err := loadedServiceFor(ctx, nk)
	if err != nil {
		return "", err
	}
	events, err := svc.StartRound(ctx, req.DoraIndicatorID)
	if err != nil {
		logger.Warn("match_start_round rejected: %v", err)
		return "", err
	}
	return respondState(svc, events)
}

func rpcMatchKan(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req DoraIndicatorRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal match_kan request: %w", err)
	}

	svc, err := loadedServiceFor(ctx, nk)
	if err != nil {
		return "", err
	}
	events, err := svc.Kan(ctx, req.DoraIndicatorID)
	if err != nil {
		logger.Warn("match_kan rejected: %v", err)
		return "", err
	}
	return respondState(svc, events)
}

func rpcMatchFinishRound(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req FinishRoundRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal match_finish_round request: %w", err)
	}

	svc, err := loadedServiceFor(ctx, nk)
	if err != nil {
		return "", err
	}
	events, err := svc.FinishRound(ctx, req.Winner, domain.WinType(req.WinType), req.Loser, req.Points)
	if err != nil {
		logger.Warn("match_finish_round rejected: %v", err)
		return "", err
	}
	return respondState(svc, events)
}

func rpcMatchFinish(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	svc, err := loadedServiceFor(ctx, nk)
	if err != nil {
		return "", err
	}
	ranking, _, err := svc.FinishMatch(ctx)
	if err != nil {
		logger.Error("match_finish failed: %v", err)
		return "", err
	}
	snap := svc.Match().Snapshot()
	return respond(FinishMatchResponse{Ranking: ranking, Match: &snap})
}

func rpcMatchReset(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	svc := serviceFor(ctx, nk)
	if err := svc.Reset(ctx); err != nil {
		logger.Error("match_reset failed: %v", err)
		return "", err
	}
	return respond(map[string]bool{"reset": true})
}

func rpcMatchState(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	svc, err := loadedServiceFor(ctx, nk)
	if err != nil {
		return "", err
	}
	return respondState(svc, nil)
}

func rpcMatchHistory(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	svc := serviceFor(ctx, nk)
	history, err := svc.History(ctx)
	if err != nil {
		logger.Error("match_history failed: %v", err)
		return "", err
	}
	lastRanking, _, err := svc.LastFinalRanking(ctx)
	if err != nil {
		logger.Error("match_history failed: %v", err)
		return "", err
	}
	return respond(MatchHistoryResponse{History: history, LastRanking: lastRanking})
}

func rpcMatchUpdateNames(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req UpdateNamesRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal match_update_names request: %w", err)
	}

	svc, err := loadedServiceFor(ctx, nk)
	if err != nil {
		return "", err
	}
	if err := svc.UpdatePlayerNames(ctx, req.Players); err != nil {
		logger.Warn("match_update_names rejected: %v", err)
		return "", err
	}
	return respondState(svc, nil)
}

func rpcParseDetections(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req ParseDetectionsRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal parse_detections request: %w", err)
	}

	tiles, unmapped := domain.ParseDetections(req.Detections)
	for _, code := range unmapped {
		logger.Warn("parse_detections: unmapped tile code %q", code)
	}

	ids := make([]string, 0, len(tiles))
	for _, t := range tiles {
		ids = append(ids, t.ID)
	}
	return respond(ParseDetectionsResponse{TileIDs: ids})
}

func respondState(svc *app.Service, events []app.Event) (string, error) {
	snap := svc.Match().Snapshot()
	return respond(MatchStateResponse{Match: &snap, Events: events})
}
