package game

// Street layout (in world units, +Z is the riding direction).
const (
	LaneMin = -15.0 // playable strip, player X is clamped to this range
	LaneMax = 15.0

	RoadHalfWidth  = 12.0 // asphalt
	CurbX          = 16.5 // mailbox line on each side
	PorchX         = 20.0 // house-front line on each side
	HouseX         = 22.5 // house body centre on each side
	VergeHalfWidth = 26.0 // grass strip outer edge

	BlockLength    = 40.0 // one generated block along Z
	HousesPerBlock = 4
	HouseSpacing   = BlockLength / HousesPerBlock

	BlocksAhead  = 4 // generated in front of the player
	BlocksBehind = 1 // kept before retiring
)

// Window defaults.
const (
	WindowWidth  = 960
	WindowHeight = 600
)

// Player kinematics.
const (
	LateralSpeed    = 9.0  // units/s while steering
	Gravity         = 22.0 // units/s^2, shared by player and papers
	JumpSpeed       = 8.0
	RampJumpSpeed   = 11.0
	PlayerWidth     = 0.8
	PlayerHeight    = 1.8
	PlayerDepth     = 1.6
	InvincibleTime  = 2.0 // seconds after a crash
	CrashSpeedScale = 0.4 // forward speed multiplier right after a crash
)

// Newspapers.
const (
	ThrowSpeedX  = 12.0 // lateral launch speed toward the curb
	ThrowSpeedY  = 4.5
	ThrowSpeedZ  = 2.0 // added on top of the player's forward speed
	PaperSize    = 0.4
	PaperTimeout = 30.0 // seconds before an undelivered paper is removed
)

// Delivery zones (half-extents around the target; papers must be low enough).
const (
	MailboxZoneX = 1.2
	MailboxZoneZ = 1.5
	MailboxZoneH = 1.4
	PorchZoneX   = 2.2
	PorchZoneZ   = 2.2
	PorchZoneH   = 1.0
)

// Scoring.
const (
	MailboxPoints = 20
	PorchPoints   = 10
	CrashPenalty  = 5
)

// Collision: axis-aligned distance test scale on every axis.
const HitTolerance = 0.7

// Session defaults (overridable via the settings file).
const (
	StartLives  = 3
	StartPapers = 30
)

// Font atlas layout (baked at runtime: 16 cols x 4 rows of 5x7 glyphs).
const (
	FontGlyphW = 5
	FontGlyphH = 7
	FontCellW  = 6 // glyph plus 1px gap
	FontCellH  = 8
	FontCols   = 16
	FontRows   = 4
	FontAtlasW = FontCellW * FontCols // 96
	FontAtlasH = FontCellH * FontRows // 32
)
