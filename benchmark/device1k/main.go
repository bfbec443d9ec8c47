package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxDevices int = 1000
var readingsPerDevice int = 10
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func postJSON(path string, payload map[string]any) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}
	resp, err := http.Post(
		fmt.Sprintf("http://%s%s", httpHostPort, path),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	resp.Body.Close()

	udids := make([]string, maxDevices)
	emails := make([]string, maxDevices)
	for i := 0; i < maxDevices; i++ {
		udids[i] = "ESP32-" + uuid.NewString()
		emails[i] = uuid.NewString() + "@bench.local"
	}
	fmt.Printf("generated %v device udids\n", maxDevices)

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < maxDevices; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code, err := postJSON("/iot/register", map[string]any{
				"udid":  udids[i],
				"email": emails[i],
			})
			if err != nil || code != http.StatusCreated {
				log.Printf("register %s failed: code=%v err=%v", udids[i], code, err)
			}
		}(i)
	}
	wg.Wait()
	fmt.Printf("registered %v devices in %v\n", maxDevices, time.Since(start))

	start = time.Now()
	for i := 0; i < maxDevices; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < readingsPerDevice; j++ {
				code, err := postJSON("/logs/submit", map[string]any{
					"udid":          udids[i],
					"temp":          15 + rnd.Float64()*20,
					"moisture_dirt": rnd.Float64() * 100,
					"moisture_air":  rnd.Float64() * 100,
					"raw_soil":      float64(rnd.Intn(4096)),
					"raw_calMin":    1200.0,
					"raw_calMax":    3100.0,
					"soil_type":     rnd.Intn(4),
				})
				if err != nil || code != http.StatusCreated {
					log.Printf("submit %s failed: code=%v err=%v", udids[i], code, err)
				}
			}
		}(i)
	}
	wg.Wait()
	fmt.Printf("submitted %v readings in %v\n", maxDevices*readingsPerDevice, time.Since(start))

	start = time.Now()
	for i := 0; i < maxDevices; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := http.Get(fmt.Sprintf("http://%s/logs/%s?latest=true", httpHostPort, udids[i]))
			if err != nil {
				log.Printf("query %s failed: %v", udids[i], err)
				return
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				log.Printf("query %s failed: code=%v", udids[i], resp.StatusCode)
			}
		}(i)
	}
	wg.Wait()
	fmt.Printf("queried latest for %v devices in %v\n", maxDevices, time.Since(start))
}
