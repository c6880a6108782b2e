package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	emsGrpc "liyu1981.xyz/engine-maintenance-service/pkg/grpc"
	"liyu1981.xyz/engine-maintenance-service/pkg/models"
)

var maxEngines int = 1000
var cyclesPerEngine int = 60
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient emsGrpc.TelemetryServiceClient
var accessToken string

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var rejected atomic.Int64

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}
	fmt.Printf("http server verified\n")

	accessToken = login()
	fmt.Printf("benchmark user logged in\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = emsGrpc.NewTelemetryServiceClient(conn)

	fmt.Printf("gRPC client connected\n")

	var startTime time.Time
	var usedTime time.Duration

	engineIDs := make([]int, maxEngines)
	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxEngines {
		wg.Add(1)
		go func() {
			engineIDs[i] = createEngine()
			fmt.Printf("\rcreated engine %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v engines: used time=%v seconds, throughput=%v action/second\n",
		maxEngines, usedTime.Seconds(), float64(maxEngines)/usedTime.Seconds(),
	)

	// cycles of one engine stay ordered; engines run concurrently
	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxEngines {
		wg.Add(1)
		go func() {
			for cycle := 1; cycle <= cyclesPerEngine; cycle++ {
				postCycle(engineIDs[i], cycle)
			}
			getAlerts(engineIDs[i])
			fmt.Printf("\rfinished engine %v", engineIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	total := maxEngines * (cyclesPerEngine + 1)
	fmt.Printf(
		"\n\ringested %v cycles for %v engines: used time=%v seconds, throughput=%v action/second, rejected=%v\n",
		maxEngines*cyclesPerEngine, maxEngines, usedTime.Seconds(), float64(total)/usedTime.Seconds(), rejected.Load(),
	)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func postJSON(path string, payload any, out any) int {
	jsonData, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s%s", httpHostPort, path), bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode
}

func login() string {
	username := "bench-" + uuid.NewString()[:8]
	password := uuid.NewString()

	status := postJSON("/api/register", map[string]string{
		"username": username,
		"email":    username + "@bench.local",
		"password": password,
		"role":     string(models.RoleEngineer),
	}, nil)
	if status != http.StatusCreated {
		log.Fatalf("register failed with status %d", status)
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if status := postJSON("/api/login", map[string]string{"username": username, "password": password}, &out); status != http.StatusOK {
		log.Fatalf("login failed with status %d", status)
	}
	return out.AccessToken
}

func createEngine() int {
	var out struct {
		Engine struct {
			ID int `json:"id"`
		} `json:"engine"`
	}
	status := postJSON("/api/engines", map[string]string{
		"serial_number": "ESN-" + uuid.NewString()[:12],
		"model":         "CFM56-7B",
	}, &out)
	if status != http.StatusCreated {
		panic(fmt.Sprintf("create engine failed with status %d", status))
	}
	return out.Engine.ID
}

// sensors drift upward with cycle so later windows score higher
func sensors(cycle int) []float64 {
	values := make([]float64, models.SensorCount)
	for i := range values {
		values[i] = rndFloat64(0, 10, 4)
	}
	values[1] = 641.5 + float64(cycle)*0.05 + rndFloat64(-0.5, 0.5, 2)
	return values
}

func postCycle(engineID int, cycle int) {
	now := time.Now()
	values := sensors(cycle)

	if flipCoin() {
		payload := map[string]any{
			"cycle":     cycle,
			"timestamp": now.Format(time.RFC3339),
			"setting1":  rndFloat64(-0.001, 0.001, 4),
			"setting2":  rndFloat64(-0.0005, 0.0005, 4),
			"setting3":  100.0,
		}
		for i, v := range values {
			payload[fmt.Sprintf("s%d", i+1)] = v
		}
		status := postJSON(fmt.Sprintf("/api/engines/%d/cycles", engineID), payload, nil)
		if status != http.StatusCreated {
			rejected.Add(1)
		}
	} else {
		resp, err := grpcClient.IngestCycle(context.Background(), &emsGrpc.IngestCycleRequest{
			EngineId: engineID,
			Cycle: &emsGrpc.CycleMessage{
				Cycle:     cycle,
				Timestamp: &now,
				Setting1:  rndFloat64(-0.001, 0.001, 4),
				Setting2:  rndFloat64(-0.0005, 0.0005, 4),
				Setting3:  100,
				Sensors:   values,
			},
		})
		if err != nil || !resp.Status.Success {
			rejected.Add(1)
		}
	}
}

func getAlerts(engineID int) {
	if flipCoin() {
		req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("http://%s/api/engines/%d/alerts", httpHostPort, engineID), nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
	} else {
		resp, err := grpcClient.GetEngineAlerts(context.Background(), &emsGrpc.EngineRequest{EngineId: engineID})
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		if !resp.Status.Success {
			fmt.Printf("\nresponse success = false: %v\n", resp.Status.Message)
		}
	}
}
