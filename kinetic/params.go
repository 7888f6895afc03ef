package kinetic

import "github.com/oomph-ac/kinetic/param"

var (
	keyGroundBrake       = param.Fighter("ground_brake")
	keyWalkSpeedMax      = param.Fighter("walk_speed_max")
	keyAirBrakeX         = param.Fighter("air_brake_x")
	keyAirSpeedXStable   = param.Fighter("air_speed_x_stable")
	keyEscapeAirSlideSpd = param.Fighter("escape_air_slide_speed")
	keyEscapeAirSlideAcc = param.Fighter("escape_air_slide_accel")

	keyCaptureCutBrakeMul    = param.Common("capture_cut_brake_mul")
	keyItemDashSwingBrakeMul = param.Common("item_dash_swing_brake_mul")
	keyItemDashThrowBrakeMul = param.Common("item_dash_throw_brake_mul")
	keyItemDashThrowBrakeDec = param.Common("item_dash_throw_brake_dec")
	keyItemDashThrowDecFrame = param.Common("item_dash_throw_brake_dec_frame")
	keyStopOverSpeedBrakeMul = param.Common("stop_over_speed_brake_mul")
	keyGroundSpeedLimit      = param.Common("ground_speed_limit")
	keyDamageGroundMul       = param.Common("damage_ground_mul")
	keyAirSpeedXLimit        = param.Common("air_speed_x_limit")
	keyEscapeAirBrake        = param.Common("escape_air_brake")
	keyRunBrakeBrakeMul      = param.Common("run_brake_brake_mul")
	keyCatchDashBrakeMul     = param.Common("catch_dash_brake_mul")
	keyShieldReboundBrake    = param.Common("shield_rebound_ground_brake")
	keyFallBrakeX            = param.Common("fall_brake_x")
	keyKnockBackSpeedXRate   = param.Common("damage_knock_back_speed_x_rate")
	keyKnockBackHitStopRate  = param.Common("damage_knock_back_hitstop_frame_rate")
	keyCommonAirSpeedXLimit  = param.Common("common_air_speed_x_limit")
	keyAirSpeedDownLimit     = param.Common("air_speed_down_limit")
	keyAirSpeedUpLimit       = param.Common("air_speed_up_limit")
	keyDamageSpeedSyncMul    = param.Common("damage_speed_sync_mul")
	keyDamageAirBrake        = param.Common("damage_air_brake")

	keyDamageSpeedLimit = param.BattleObject("damage_speed_limit")
)
