package steps

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cucumber/godog"
	"github.com/rs/zerolog"

	"github.com/andrescamacho/harbormaster-go/internal/application/game"
	"github.com/andrescamacho/harbormaster-go/internal/domain/shared"
	"github.com/andrescamacho/harbormaster-go/internal/infrastructure/config"
)

func registerReplaySteps(sc *godog.ScenarioContext, gc *gameplayContext) {
	sc.Step(`^I export the replay and import it into a new session$`, gc.exportAndImport)
	sc.Step(`^the imported session should match the original$`, gc.importedSessionMatches)
	sc.Step(`^I import a corrupt replay$`, gc.importCorruptReplay)
	sc.Step(`^the import should fail with a format error$`, gc.importFailedWithFormatError)
}

func (g *gameplayContext) exportAndImport() error {
	text, err := g.session.ExportReplay()
	if err != nil {
		return err
	}
	g.imported, g.importErr = game.ImportReplay(config.Default(), zerolog.Nop(), text)
	return g.importErr
}

func (g *gameplayContext) importedSessionMatches() error {
	wantPlayer, err := g.session.PlayerPort()
	if err != nil {
		return err
	}
	gotPlayer, err := g.imported.PlayerPort()
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(wantPlayer, gotPlayer) {
		return fmt.Errorf("player port differs after import:\nwant %+v\ngot  %+v", wantPlayer, gotPlayer)
	}

	wantAI, err := g.session.AIPort()
	if err != nil {
		return err
	}
	gotAI, err := g.imported.AIPort()
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(wantAI, gotAI) {
		return fmt.Errorf("opponent port differs after import:\nwant %+v\ngot  %+v", wantAI, gotAI)
	}

	if g.session.CurrentTurn() != g.imported.CurrentTurn() {
		return fmt.Errorf("turn counter differs: %d vs %d", g.session.CurrentTurn(), g.imported.CurrentTurn())
	}
	return nil
}

func (g *gameplayContext) importCorruptReplay() error {
	g.imported, g.importErr = game.ImportReplay(config.Default(), zerolog.Nop(), `[{"seq":1,"type":"ShipTeleported","data":{}}]`)
	return nil
}

func (g *gameplayContext) importFailedWithFormatError() error {
	var formatErr *shared.FormatError
	if !errors.As(g.importErr, &formatErr) {
		return fmt.Errorf("expected a format error, got %v", g.importErr)
	}
	return nil
}
