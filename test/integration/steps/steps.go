package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/finance-dashboard/agent/internal/domain/entity"
)

func registerAgentSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the agent is offline$`, theAgentIsOffline)
	ctx.Step(`^the agent is online$`, theAgentIsOnline)
	ctx.Step(`^the agent goes offline$`, theAgentIsOffline)
	ctx.Step(`^the agent comes online$`, theAgentIsOnline)
	ctx.Step(`^the remote API is failing$`, theRemoteAPIIsFailing)
	ctx.Step(`^the remote API recovers$`, theRemoteAPIRecovers)
}

func registerRequestSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
}

func registerSyncSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the sync queue should hold (\d+) items?$`, theSyncQueueShouldHold)
	ctx.Step(`^the remote API should have received (\d+) "([^"]*)" records?$`, theRemoteAPIShouldHaveReceived)
}

func theAgentIsOffline(ctx context.Context) error {
	GetTestContext(ctx).monitor.SetOnline(false)
	return nil
}

func theAgentIsOnline(ctx context.Context) error {
	GetTestContext(ctx).monitor.SetOnline(true)
	return nil
}

func theRemoteAPIIsFailing(ctx context.Context) error {
	GetTestContext(ctx).remoteAPI.SetFailing(true)
	return nil
}

func theRemoteAPIRecovers(ctx context.Context) error {
	GetTestContext(ctx).remoteAPI.SetFailing(false)
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	return sendRequest(ctx, method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	return sendRequest(ctx, method, path, strings.NewReader(body.Content))
}

func sendRequest(ctx context.Context, method, path string, body io.Reader) error {
	tc := GetTestContext(ctx)

	req, err := http.NewRequest(method, tc.server.URL+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("status is %d, want %d: %s", tc.response.StatusCode, expected, tc.responseBody)
	}
	return nil
}

// theResponseFieldShouldBe compares a dot-separated JSON path against the
// expected value, with numbers and booleans compared by string form.
func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)

	var doc any
	if err := json.Unmarshal(tc.responseBody, &doc); err != nil {
		return fmt.Errorf("response is not JSON: %w", err)
	}

	value := doc
	for _, key := range strings.Split(path, ".") {
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q: %q is not an object", path, key)
		}
		value, ok = obj[key]
		if !ok {
			return fmt.Errorf("field %q not present in response: %s", path, tc.responseBody)
		}
	}

	var got string
	switch v := value.(type) {
	case string:
		got = v
	case bool:
		got = strconv.FormatBool(v)
	case float64:
		got = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		raw, _ := json.Marshal(v)
		got = string(raw)
	}

	if got != expected {
		return fmt.Errorf("field %q is %q, want %q", path, got, expected)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, substring string) error {
	tc := GetTestContext(ctx)
	if !bytes.Contains(tc.responseBody, []byte(substring)) {
		return fmt.Errorf("response %s does not contain %q", tc.responseBody, substring)
	}
	return nil
}

func theSyncQueueShouldHold(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if !tc.manager.HasPending(ctx) && expected > 0 {
		return fmt.Errorf("queue is empty, want %d items", expected)
	}

	resp, err := http.Get(tc.server.URL + "/api/sync/status")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var status struct {
		Pending int `json:"pending"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return err
	}
	if status.Pending != expected {
		return fmt.Errorf("queue holds %d items, want %d", status.Pending, expected)
	}
	return nil
}

func theRemoteAPIShouldHaveReceived(ctx context.Context, expected int, collection string) error {
	tc := GetTestContext(ctx)

	paths := map[string]string{
		string(entity.CollectionAssets):        "/api/assets",
		string(entity.CollectionLiabilities):   "/api/liabilities",
		string(entity.CollectionExpenses):      "/api/budget/expenses",
		string(entity.CollectionIncome):        "/api/budget/income",
		string(entity.CollectionDailyExpenses): "/api/daily-expenses",
		string(entity.CollectionTransactions):  "/api/transactions",
	}
	path, ok := paths[collection]
	if !ok {
		return fmt.Errorf("unknown collection %q", collection)
	}

	received := tc.remoteAPI.Received(path)
	if len(received) != expected {
		return fmt.Errorf("remote API received %d %s records, want %d", len(received), collection, expected)
	}
	return nil
}
