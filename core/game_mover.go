package core

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
)

var (
	ErrAlreadyInTarget    = errors.New("the specified game is already in the target library")
	ErrGameNotFound       = errors.New("cannot find game in any library")
	ErrManifestUnresolved = errors.New("game manifest changed or became unreadable after it was indexed")
)

// PartialMoveError reports a move that relocated the game data but failed to
// relocate the manifest. Nothing is rolled back.
type PartialMoveError struct {
	Game         *Game
	DataPath     string
	ManifestPath string
	Err          error
}

func (e *PartialMoveError) Error() string {
	return fmt.Sprintf("game data of %v was moved to %v but its manifest is still at %v: %v",
		e.Game.Name, e.DataPath, e.ManifestPath, e.Err)
}

func (e *PartialMoveError) Unwrap() error {
	return e.Err
}

type MovePlan struct {
	Game        *Game
	SourceIndex int
	SourcePath  string
	TargetIndex int
	TargetPath  string
}

func (p *MovePlan) sourceSteamApps() string {
	return filepath.Join(p.SourcePath, SteamAppsDir)
}

func (p *MovePlan) targetSteamApps() string {
	return filepath.Join(p.TargetPath, SteamAppsDir)
}

func (p *MovePlan) DataSource() string {
	return filepath.Join(p.sourceSteamApps(), CommonDir, p.Game.InstallDir)
}

func (p *MovePlan) DataTarget() string {
	return filepath.Join(p.targetSteamApps(), CommonDir, p.Game.InstallDir)
}

func (p *MovePlan) ManifestSource() string {
	return filepath.Join(p.sourceSteamApps(), ManifestFileName(p.Game.Id))
}

func (p *MovePlan) ManifestTarget() string {
	return filepath.Join(p.targetSteamApps(), ManifestFileName(p.Game.Id))
}

// Confirmer decides whether a planned move may go ahead.
type Confirmer interface {
	Confirm(plan *MovePlan) (bool, error)
}

type ConfirmFunc func(plan *MovePlan) (bool, error)

func (f ConfirmFunc) Confirm(plan *MovePlan) (bool, error) {
	return f(plan)
}

type MoveResult struct {
	Plan  *MovePlan
	Moved bool
}

type GameMover struct {
	fs        LocalFs
	confirmer Confirmer
	started   func(plan *MovePlan)
}

func MakeGameMover(localFs LocalFs, confirmer Confirmer) *GameMover {
	return &GameMover{
		fs:        localFs,
		confirmer: confirmer,
	}
}

// OnMoveStarted registers a callback invoked after confirmation, right before
// the first filesystem change.
func (gm *GameMover) OnMoveStarted(fn func(plan *MovePlan)) {
	gm.started = fn
}

// PlanMove locates gameId and validates that it can be moved to the library at
// targetIndex. It never touches the filesystem beyond reading.
func (gm *GameMover) PlanMove(gameId int, targetIndex int, libraries Libraries) (*MovePlan, error) {
	targetIds, err := GetGameIds(gm.fs, targetIndex, libraries)
	if err != nil {
		return nil, err
	}

	if slices.Contains(targetIds, gameId) {
		return nil, ErrAlreadyInTarget
	}

	for i, libraryPath := range libraries {
		if i == targetIndex {
			continue
		}

		gameIds, err := GetGameIds(gm.fs, i, libraries)
		if err != nil {
			Logger.Warn("skipping unreadable library", "library", libraryPath, "err", err)
			continue
		}
		if !slices.Contains(gameIds, gameId) {
			continue
		}

		steamAppsPath, _ := libraries.SteamAppsPath(i)
		game, ok := GetGame(gm.fs, steamAppsPath, gameId)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrManifestUnresolved, filepath.Join(steamAppsPath, ManifestFileName(gameId)))
		}

		return &MovePlan{
			Game:        game,
			SourceIndex: i,
			SourcePath:  libraryPath,
			TargetIndex: targetIndex,
			TargetPath:  libraries[targetIndex],
		}, nil
	}

	return nil, ErrGameNotFound
}

// ExecuteMove moves the game data directory first and the manifest second.
// If the process dies in between, the manifest still sits in the source
// library while the data is already in the target; a manifest never points
// at data its library no longer holds.
func (gm *GameMover) ExecuteMove(plan *MovePlan) error {
	for _, target := range []string{plan.DataTarget(), plan.ManifestTarget()} {
		exists, err := gm.exists(target)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %v", ErrDestinationExists, target)
		}
	}

	if err := gm.fs.MkdirAll(filepath.Dir(plan.DataTarget()), 0o755); err != nil {
		return fmt.Errorf("failed to prepare target library: %w", err)
	}

	// a copy that could not remove its source still completed, so the move
	// carries on and the leftovers are reported at the end
	var leftovers []error

	Logger.Info("moving game data", "game", plan.Game.Id, "from", plan.DataSource(), "to", plan.DataTarget())
	if err := gm.fs.Move(plan.DataSource(), plan.DataTarget()); err != nil {
		if !isSourceCleanupError(err) {
			return fmt.Errorf("failed to move game data: %w", err)
		}
		leftovers = append(leftovers, err)
	}

	Logger.Info("moving manifest", "game", plan.Game.Id, "from", plan.ManifestSource(), "to", plan.ManifestTarget())
	if err := gm.fs.Move(plan.ManifestSource(), plan.ManifestTarget()); err != nil {
		if !isSourceCleanupError(err) {
			Logger.Error("partial move", "game", plan.Game.Id, "err", err)
			return &PartialMoveError{
				Game:         plan.Game,
				DataPath:     plan.DataTarget(),
				ManifestPath: plan.ManifestSource(),
				Err:          err,
			}
		}
		leftovers = append(leftovers, err)
	}

	return errors.Join(leftovers...)
}

func isSourceCleanupError(err error) bool {
	var cleanup *SourceCleanupError
	return errors.As(err, &cleanup)
}

func (gm *GameMover) MoveGame(gameId int, targetIndex int, libraries Libraries) (*MoveResult, error) {
	plan, err := gm.PlanMove(gameId, targetIndex, libraries)
	if err != nil {
		return nil, err
	}

	ok, err := gm.confirmer.Confirm(plan)
	if err != nil {
		return nil, err
	}
	if !ok {
		Logger.Info("move declined", "game", gameId)
		return &MoveResult{Plan: plan}, nil
	}

	if gm.started != nil {
		gm.started(plan)
	}

	if err := gm.ExecuteMove(plan); err != nil {
		return nil, err
	}

	return &MoveResult{Plan: plan, Moved: true}, nil
}

func (gm *GameMover) exists(path string) (bool, error) {
	_, err := gm.fs.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
