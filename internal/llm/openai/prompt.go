package openai

import "fmt"

// Message represents a chat message sent to the inference server.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = `You are an expert at parsing metadata from file names. Your task is to identify the primary movie or series name from a noisy string. Provide only the cleaned name. Do not explain.

Examples:
- Input: "The.Boys.S01.COMPLETE.REPACK.2160p.AMZN.WEB-DL.DDP5.1.HEVC-NTb"
  Output: The Boys
- Input: "Oppenheimer.2023.1080p.BluRay.x264-YTS"
  Output: Oppenheimer
- Input: "Stranger Things 2016 S04E01E02 MULTi 1080p NF WEBRip x265-T4D"
  Output: Stranger Things
- Input: "The.Shawshank.Redemption.1994.INTERNAL.1080p.BluRay.x264-MARS"
  Output: The Shawshank Redemption`

// BuildPrompt creates the chat messages for one title refinement request.
func BuildPrompt(rawTitle, remaining string) []Message {
	user := fmt.Sprintf("Analyze the following partial torrent title and extract the clean series or movie name.\nOriginal Title: %q\nRemaining Text: %q", rawTitle, remaining)
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: user},
	}
}
