package game

// Destroyed reports whether the asset has reached its terminal state.
func (a *CyberAsset) Destroyed() bool {
	return a.State == AssetDestroyed
}

// Stage returns the narrative label for the next hit against this asset.
// Meaningless once the asset is destroyed; targeting logic never offers a
// destroyed asset.
func (a *CyberAsset) Stage() Stage {
	switch a.State {
	case AssetFacedown:
		return StageObservation
	case AssetRevealed:
		return StageAssessment
	default:
		return StagePWN
	}
}

// advance moves the asset one step along facedown → revealed → rotated →
// destroyed and increments the damage counter. No-op on a destroyed asset;
// there are no back-transitions and no healing.
func (a *CyberAsset) advance() {
	switch a.State {
	case AssetFacedown:
		a.State = AssetRevealed
	case AssetRevealed:
		a.State = AssetRotated
	case AssetRotated:
		a.State = AssetDestroyed
	default:
		return
	}
	a.Damage++
}

// stateRank orders live asset states for AI target preference: the closer an
// asset is to destruction, the higher its rank.
func stateRank(s AssetState) int {
	switch s {
	case AssetRotated:
		return 3
	case AssetRevealed:
		return 2
	case AssetFacedown:
		return 1
	default:
		return 0
	}
}
