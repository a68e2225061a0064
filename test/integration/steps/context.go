// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/agent/internal/application/classifier"
	"github.com/finance-dashboard/agent/internal/application/store"
	syncmgr "github.com/finance-dashboard/agent/internal/application/sync"
	"github.com/finance-dashboard/agent/internal/application/usecase/capture"
	"github.com/finance-dashboard/agent/internal/domain/valueobject"
	"github.com/finance-dashboard/agent/internal/infra/server/router"
	"github.com/finance-dashboard/agent/internal/integration/entrypoint/controller"
	"github.com/finance-dashboard/agent/internal/integration/persistence"
	"github.com/finance-dashboard/agent/internal/integration/remote"
	"github.com/finance-dashboard/agent/test/integration/mock"
)

// TestContext holds the per-scenario state: the agent wired against an
// in-memory database and a mock remote API.
type TestContext struct {
	db        *mock.Db
	remoteAPI *mock.RemoteAPI
	monitor   *remote.Monitor
	manager   *syncmgr.Manager
	records   *store.RecordStore

	server       *httptest.Server
	response     *http.Response
	responseBody []byte
}

type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario wires a fresh agent for every scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		if err := db.Clear(); err != nil {
			return ctx, err
		}

		remoteAPI := mock.NewRemoteAPI()

		recordRepo := persistence.NewRecordRepository(db.Conn)
		metaRepo := persistence.NewMetaRepository(db.Conn)
		queueRepo := persistence.NewSyncQueueRepository(db.Conn)

		records := store.NewRecordStore(recordRepo, metaRepo, nil)
		if err := records.Initialize(ctx); err != nil {
			return ctx, err
		}

		// The monitor is driven manually through SetOnline; Start is
		// never called so probing stays out of the scenarios.
		monitor := remote.NewMonitor(remoteAPI.Server.URL+"/health", time.Minute)

		client := remote.NewClient(remoteAPI.Server.URL, 5*time.Second)
		manager := syncmgr.NewManager(queueRepo, client, monitor, syncmgr.Config{
			PollInterval: time.Hour,
			ItemTimeout:  5 * time.Second,
		})

		rules := classifier.NewRuleBased(valueobject.DefaultFormatter())
		captureUseCase := capture.NewCaptureUtteranceUseCase(rules, nil, records, manager, monitor)

		healthController := controller.NewHealthController(func() bool { return true })
		recordController := controller.NewRecordController(records)
		captureController := controller.NewCaptureController(rules, captureUseCase)
		syncController := controller.NewSyncController(manager, monitor, records, queueRepo)
		tipsController := controller.NewTipsController(rules, records)

		r := router.NewRouter(healthController, recordController, captureController, syncController, tipsController)
		engine := r.Setup("test")

		tc := &TestContext{
			db:        db,
			remoteAPI: remoteAPI,
			monitor:   monitor,
			manager:   manager,
			records:   records,
			server:    httptest.NewServer(engine),
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil {
			if tc.server != nil {
				tc.server.Close()
			}
			if tc.remoteAPI != nil {
				tc.remoteAPI.Close()
			}
		}
		return ctx, nil
	})

	registerAgentSteps(ctx)
	registerRequestSteps(ctx)
	registerResponseSteps(ctx)
	registerSyncSteps(ctx)
}
