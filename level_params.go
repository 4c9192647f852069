package fastlz

// compressLevelParams holds internal parameters for one compression level.
// All fields are unexported; the type is used only inside the package.
type compressLevelParams struct {
	maxDistance int // farthest accepted back-reference
	nearLimit   int // distances above this need minFarMatchLen (0 = no far matches)
	chainDepth  int // positions remembered per hash bucket
}

// levelParams is indexed by Level; index 0 (LevelAuto) is resolved before use.
var levelParams = [3]compressLevelParams{
	{},
	{maxL1Distance, 0, 1},
	{maxL2Distance, maxL2NearOffset, 4},
}
