package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

var maxDevices int = 1000
var httpHostPort string = "127.0.0.1:1080"

var client *resty.Client
var adminToken string

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	client = resty.New().SetBaseURL("http://" + httpHostPort)

	resp, err := client.R().Get("/healthz")
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	if resp.StatusCode() != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	login()

	fmt.Printf("logged in as admin\n")

	deviceIDs := make([]uint, maxDevices)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			deviceIDs[i] = createDevice(i)
			fmt.Printf("\rcreated device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func login() {
	var result struct {
		Token string `json:"token"`
	}
	resp, err := client.R().
		SetBody(map[string]string{"username": "admin", "password": "admin123"}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil || resp.StatusCode() != http.StatusOK {
		log.Fatalf("login failed: err=%v, resp=%v", err, resp)
	}
	adminToken = result.Token
}

func createDevice(index int) uint {
	var created struct {
		ID uint `json:"id"`
	}
	resp, err := client.R().
		SetAuthToken(adminToken).
		SetBody(map[string]any{
			"name":     fmt.Sprintf("Bench Device %v", index),
			"location": fmt.Sprintf("Bench Site %v", index%10),
			"settings": map[string]any{
				"measurementInterval": 15,
				"alertThresholds":     map[string]float64{"low": 0.5, "high": 5.0},
				"calibration":         map[string]float64{"offset": 0, "scale": 1},
			},
		}).
		SetResult(&created).
		Post("/api/devices")
	if err != nil || resp.StatusCode() != http.StatusCreated {
		panic(fmt.Sprintf("err: %v, resp: %v", err, resp))
	}
	return created.ID
}

func doAction(deviceID uint) {
	actions := []func(){
		genIngestAction(deviceID),
		genChartAction(deviceID),
		genDashboardStatsAction(),
	}
	actionNames := []string{
		"Ingest",
		"GetChart",
		"DashboardStats",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genIngestAction(deviceID uint) func() {
	return func() {
		resp, err := client.R().
			SetBody(map[string]any{
				"deviceId":     deviceID,
				"level":        rndFloat64(0.0, 6.0, 2),
				"temperature":  rndFloat64(10.0, 35.0, 1),
				"batteryLevel": int(rndFloat64(20, 100, 0)),
			}).
			Post("/api/data/ingest")
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusTooManyRequests {
			fmt.Printf("\nresponse status code != 201: %v\n", resp)
		}
	}
}

func genChartAction(deviceID uint) func() {
	return func() {
		resp, err := client.R().
			SetAuthToken(adminToken).
			SetQueryParam("timeRange", "1hour").
			Get(fmt.Sprintf("/api/devices/%v/chart", deviceID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		if resp.StatusCode() != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genDashboardStatsAction() func() {
	return func() {
		resp, err := client.R().
			SetAuthToken(adminToken).
			Get("/api/dashboard/stats")
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		if resp.StatusCode() != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
