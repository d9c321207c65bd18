package nakama

// RPC ids registered with the Nakama runtime.
const (
	RpcEvaluateHand     = "evaluate_hand"
	RpcMatchNew         = "match_new"
	RpcMatchStartRound  = "match_start_round"
	RpcMatchKan         = "match_kan"
	RpcMatchFinishRound = "match_finish_round"
	RpcMatchFinish      = "match_finish"
	RpcMatchReset       = "match_reset"
	RpcMatchState       = "match_state"
	RpcMatchHistory     = "match_history"
	RpcMatchUpdateNames = "match_update_names"
	RpcParseDetections  = "parse_detections"
)

// StorageCollection holds all persisted riichi state, keyed per user.
const StorageCollection = "riichi"
