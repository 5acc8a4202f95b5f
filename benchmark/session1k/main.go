package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxSessions int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

const headerSessionID = "X-Session-ID"

var metrics = []string{
	"temperature",
	"blood_pressure",
	"heart_rate",
	"respiration_rate",
	"oxygen_saturation",
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	// First contact: the server issues a session ID per caller.
	sessionIDs := make([]string, maxSessions)
	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxSessions {
		wg.Add(1)
		go func() {
			sessionIDs[i] = openSession()
			fmt.Printf("\ropened session %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\ropened %v sessions: used time=%v seconds, throughput=%v action/second\n",
		maxSessions, usedTime.Seconds(), float64(maxSessions)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxSessions {
		wg.Add(1)
		go func() {
			doAction(sessionIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v sessions: used time=%v seconds, throughput=%v action/second\n",
		maxSessions, usedTime.Seconds(), float64(maxSessions*3)/usedTime.Seconds(),
	)
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func rndInt(min, max int) int {
	return min + int(rnd.Int31n(int32(max-min)))
}

func openSession() string {
	resp, err := http.Get(fmt.Sprintf("http://%s/vitals", httpHostPort))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	sessionID := resp.Header.Get(headerSessionID)
	if sessionID == "" {
		panic("server did not issue a session ID")
	}
	return sessionID
}

func sessionRequest(method, path, sessionID string, payload any) *http.Response {
	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		jsonData, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonData)
	}
	req, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", httpHostPort, path), body)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerSessionID, sessionID)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	return resp
}

func doAction(sessionID string) {
	actions := []func(){
		genSubmitVitalsAction(sessionID),
		genReadHistoryAction(sessionID),
		genReadTemperatureAction(sessionID),
	}
	actionNames := []string{
		"SubmitVitals",
		"ReadHistory",
		"ReadTemperature",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for session %v", actionNames[index], sessionID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genSubmitVitalsAction(sessionID string) func() {
	return func() {
		metric := metrics[rnd.Int31n(int32(len(metrics)))]
		resp := sessionRequest("POST", "/vitals/changed", sessionID, map[string]string{
			"metric": metric,
		})
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nmark changed status code != 200: %v\n", resp.StatusCode)
			return
		}

		systolic := rndInt(100, 180)
		payload := map[string]any{
			"temperature":       rndFloat64(96.0, 102.0, 1),
			"systolic":          systolic,
			"diastolic":         rndInt(40, systolic-20),
			"heart_rate":        rndInt(40, 120),
			"respiration_rate":  rndInt(8, 24),
			"oxygen_saturation": rndInt(88, 100),
		}
		resp = sessionRequest("PUT", "/vitals", sessionID, payload)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nsubmit status code != 200: %v\n", resp.StatusCode)
		}
	}
}

func genReadHistoryAction(sessionID string) func() {
	return func() {
		resp := sessionRequest("GET", "/vitals/history?start=-1h", sessionID, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nhistory status code != 200: %v\n", resp.StatusCode)
		}
	}
}

func genReadTemperatureAction(sessionID string) func() {
	return func() {
		resp := sessionRequest("GET", "/vitals/latest-temperature", sessionID, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nlatest temperature status code != 200: %v\n", resp.StatusCode)
		}
	}
}
