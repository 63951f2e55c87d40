package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

func baseURL() string {
	if v := os.Getenv("ASSISTANT_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:3000/api/assistant/v1"
}

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL()+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // Model calls can be slow; the server enforces the deadline
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func mustSend(method, url string, body interface{}) (*http.Response, []byte) {
	resp, respBody, err := sendRequest(method, url, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		color.Red("Status: %s", resp.Status)
	} else {
		color.Green("Status: %s", resp.Status)
	}
	return resp, respBody
}

func main() {
	color.Cyan("🚀 Starting Academic Assistant API Smoke Test\n")

	// 1. Health
	color.Yellow("\n1. Health")
	_, body := mustSend("GET", "/health", nil)
	var healthResp map[string]interface{}
	json.Unmarshal(body, &healthResp)
	prettyPrint(healthResp)

	// 2. Agent catalog
	color.Yellow("\n2. Get Default Agents")
	_, body = mustSend("GET", "/agents", nil)
	var agentsResp map[string]interface{}
	json.Unmarshal(body, &agentsResp)
	agents, _ := agentsResp["data"].([]interface{})
	fmt.Printf("Agents: %d\n", len(agents))

	// 3. Drafting
	color.Yellow("\n3. Process: DRAFTING")
	topic := "Atatürk'ün eğitim reformları"
	_, body = mustSend("POST", "/process", map[string]interface{}{
		"input": topic,
		"mode":  "DRAFTING",
	})
	var draftResp map[string]interface{}
	json.Unmarshal(body, &draftResp)
	draftText := ""
	if data, ok := draftResp["data"].(map[string]interface{}); ok {
		draftText, _ = data["rewrittenText"].(string)
		fmt.Printf("Draft length: %d\n", len(draftText))
		if findings, ok := data["findings"].([]interface{}); ok {
			fmt.Printf("Findings: %d (expected 0)\n", len(findings))
		}
	} else {
		prettyPrint(draftResp)
	}

	// 4. Analysis with every default agent enabled
	color.Yellow("\n4. Process: ANALYSIS (all agents)")
	_, body = mustSend("POST", "/process", map[string]interface{}{
		"input":   "Yapılan araştırmalar gösteriyor ki eğitim çok önemlidir. Bu yüzden herkes okumalıdır. Sonuç olarak eğitim önemlidir.",
		"mode":    "ANALYSIS",
		"toggles": agents,
	})
	var analysisResp map[string]interface{}
	json.Unmarshal(body, &analysisResp)
	if data, ok := analysisResp["data"].(map[string]interface{}); ok {
		fmt.Printf("Rewritten: %s\n", data["rewrittenText"])
		if findings, ok := data["findings"].([]interface{}); ok {
			fmt.Printf("Findings: %d\n", len(findings))
			for _, f := range findings {
				prettyPrint(f)
			}
		}
	} else {
		prettyPrint(analysisResp)
	}

	// 5. Export
	color.Yellow("\n5. Export Draft")
	resp, body := mustSend("POST", "/export", map[string]interface{}{
		"mode":          "DRAFTING",
		"rawInput":      topic,
		"rewrittenText": draftText,
	})
	fmt.Printf("Content-Disposition: %s\n", resp.Header.Get("Content-Disposition"))
	fmt.Printf("Exported bytes: %d\n", len(body))

	color.Cyan("\n✅ Smoke test finished")
}
