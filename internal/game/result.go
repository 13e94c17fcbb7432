package game

// Result tells the caller whether an action happened and, if not, why.
// Rejections are expected outcomes, not errors.
type Result int

const (
	OK Result = iota
	RejectedPaused
	RejectedDead
	RejectedBusy
	RejectedInWater
	RejectedSailing
	RejectedCooldown
	RejectedNoMagic
	RejectedNoStamina
	RejectedWrongTool
	RejectedLocked
	RejectedNoTarget
	RejectedInventoryFull
	RejectedNotFishing
	RejectedInvalid
)

var resultNames = [...]string{
	"ok",
	"paused",
	"dead",
	"busy",
	"in_water",
	"sailing",
	"cooldown",
	"no_magic",
	"no_stamina",
	"wrong_tool",
	"locked",
	"no_target",
	"inventory_full",
	"not_fishing",
	"invalid",
}

func (r Result) String() string {
	if int(r) < 0 || int(r) >= len(resultNames) {
		return "unknown"
	}
	return resultNames[r]
}

// MarshalText serializes Result as its name.
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
