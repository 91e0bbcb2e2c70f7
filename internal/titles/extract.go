package titles

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Extract applies the ordered matchers against a raw release title. It returns
// the partially-filled result (everything except the final title) and the
// leftover text after matched tokens were removed and separators normalized.
func Extract(raw string) (Result, string) {
	res := Result{Raw: raw}
	working := sitePrefixRe.ReplaceAllString(raw, "")
	working = containerExtRe.ReplaceAllString(working, "")
	hits := 0

	if m := yearRe.FindStringSubmatch(working); m != nil {
		res.Year, _ = strconv.Atoi(m[1])
		res.mark("year", ProvRegex)
		working = strings.Replace(working, m[0], "", 1)
		hits++
	}

	if m := resolutionRe.FindStringSubmatch(working); m != nil {
		r := strings.ToLower(m[1])
		if r == "4k" {
			r = "2160p"
		}
		res.Resolution = r
		res.mark("resolution", ProvRegex)
		working = strings.Replace(working, m[0], "", 1)
		hits++
	}

	if m := qualityRe.FindStringSubmatch(working); m != nil {
		res.Quality = strings.ToUpper(strings.ReplaceAll(m[1], "-", ""))
		res.mark("quality", ProvRegex)
		working = strings.Replace(working, m[0], "", 1)
		hits++
		switch res.Quality {
		case "WEBDL", "WEBRIP":
			res.Source = "web"
		case "BLURAY", "BDRIP", "REMUX":
			res.Source = "bluray"
		default:
			res.Source = "p2p"
		}
		res.mark("source", ProvRegex)
	}

	if m := videoCodecRe.FindStringSubmatch(working); m != nil {
		codec := strings.ToUpper(m[1])
		switch {
		case strings.Contains(codec, "265"):
			res.VideoCodec = "x265"
		case strings.Contains(codec, "264"):
			res.VideoCodec = "x264"
		default:
			res.VideoCodec = codec
		}
		res.mark("video_codec", ProvRegex)
		working = strings.Replace(working, m[0], "", 1)
		hits++
	}

	if m := audioCodecRe.FindStringSubmatch(working); m != nil {
		res.AudioCodec = strings.ToUpper(strings.ReplaceAll(m[1], "-", ""))
		res.mark("audio_codec", ProvRegex)
		working = strings.Replace(working, m[0], "", 1)
		hits++
	}

	if m := seasonRe.FindStringSubmatch(working); m != nil {
		res.Season, _ = strconv.Atoi(m[1])
		res.mark("season", ProvRegex)
		working = strings.Replace(working, m[0], "", 1)
		hits++
	}

	episodes, episodeRange, chainSeason := parseEpisodes(working)
	if len(episodes) > 0 {
		res.Episodes = episodes
		res.mark("episodes", ProvRegex)
		if episodeRange != "" {
			res.EpisodeRange = episodeRange
			res.mark("episode_range", ProvRegex)
		}
		hits++
	}
	if res.Season == 0 && chainSeason > 0 {
		res.Season = chainSeason
		res.mark("season", ProvRegex)
	}

	langs, langTokens := parseLanguages(raw)
	if len(langs) > 0 {
		res.AudioLanguages = langs
		res.mark("audio_languages", ProvRegex)
		hits++
	}

	if m := sizeRe.FindStringSubmatch(raw); m != nil {
		if size := normalizeFileSize(m); size != "" {
			res.FileSize = size
			res.mark("file_size", ProvRegex)
			working = strings.Replace(working, m[0], "", 1)
			hits++
		}
	}

	if flags := parseFlags(raw); len(flags) > 0 {
		res.Flags = flags
		res.mark("flags", ProvRegex)
	}

	group := ""
	if m := groupRe.FindStringSubmatch(raw); m != nil {
		for _, g := range m[1:] {
			if g != "" {
				group = g
				break
			}
		}
	}
	if group == "" {
		if m := knownGroupsRe.FindStringSubmatch(cleanTitle(working)); m != nil {
			group = m[1]
		}
	}
	if group != "" {
		res.Group = group
		res.mark("group", ProvRegex)
		hits++
	}

	// Episode and season markers are cut out before separators are
	// normalized, while bracket syntax is still intact.
	remaining := episodeBracketRangeRe.ReplaceAllString(working, "")
	remaining = seasonEpRe.ReplaceAllString(remaining, "")
	remaining = episodeRangeRe.ReplaceAllString(remaining, "")
	remaining = episodeRe.ReplaceAllString(remaining, "")
	remaining = seasonRe.ReplaceAllString(remaining, "")
	remaining = trailingSeasonRe.ReplaceAllString(remaining, "")
	remaining = completePackRe.ReplaceAllString(remaining, "")
	remaining = releaseFlagRe.ReplaceAllString(remaining, "")
	remaining = cleanTitle(remaining)
	if res.Group != "" {
		remaining = removeWord(remaining, res.Group)
	}
	for _, token := range langTokens {
		remaining = removeWord(remaining, token)
	}
	remaining = finishTitle(remaining)

	res.Confidence = confidenceFromHits(hits)
	return res, remaining
}

func confidenceFromHits(hits int) float64 {
	c := float64(hits) / 8.0
	if c > 0.7 {
		return 0.7
	}
	return c
}

func parseEpisodes(s string) (episodes []int, rangeStr string, season int) {
	seen := make(map[int]struct{})
	add := func(ep int) {
		if _, ok := seen[ep]; !ok {
			seen[ep] = struct{}{}
			episodes = append(episodes, ep)
		}
	}

	if m := episodeRangeRe.FindStringSubmatch(s); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if start <= end {
			for ep := start; ep <= end; ep++ {
				add(ep)
			}
			rangeStr = fmt.Sprintf("%d-%d", start, end)
		}
	}

	if m := episodeBracketRangeRe.FindStringSubmatch(s); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if start <= end {
			for ep := start; ep <= end; ep++ {
				add(ep)
			}
			rangeStr = fmt.Sprintf("%d-%d", start, end)
		}
	}

	for _, m := range seasonEpRe.FindAllStringSubmatch(s, -1) {
		if season == 0 {
			season, _ = strconv.Atoi(m[1])
		}
		for _, em := range episodeChainRe.FindAllStringSubmatch(m[2], -1) {
			ep, _ := strconv.Atoi(em[1])
			add(ep)
		}
	}

	for _, m := range episodeRe.FindAllStringSubmatch(s, -1) {
		ep, _ := strconv.Atoi(m[1])
		add(ep)
	}

	sort.Ints(episodes)
	return episodes, rangeStr, season
}

func parseLanguages(raw string) (codes []string, tokens []string) {
	found := make(map[string]struct{})
	tokenSeen := make(map[string]struct{})
	record := func(code, token string) {
		found[code] = struct{}{}
		lower := strings.ToLower(token)
		if _, ok := tokenSeen[lower]; !ok {
			tokenSeen[lower] = struct{}{}
			tokens = append(tokens, token)
		}
	}

	for _, m := range langBlockRe.FindAllStringSubmatch(raw, -1) {
		for _, token := range langSplitRe.Split(m[1], -1) {
			if code, ok := languageMap[strings.ToLower(token)]; ok {
				record(code, token)
			}
		}
	}

	if len(found) == 0 {
		normalized := separatorsRe.ReplaceAllString(raw, " ")
		for _, token := range strings.Fields(normalized) {
			if code, ok := languageMap[strings.ToLower(token)]; ok {
				record(code, token)
			}
		}
	}

	if len(found) == 0 {
		return nil, nil
	}
	codes = make([]string, 0, len(found))
	for code := range found {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, tokens
}

func normalizeFileSize(m []string) string {
	total, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return ""
	}
	if m[1] != "" {
		if mult, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(m[1]), "x")); err == nil {
			total *= float64(mult)
		}
	}

	switch strings.ToLower(m[3]) {
	case "gb", "gib":
		return fmt.Sprintf("%.2fGB", total)
	case "mb", "mib":
		if total >= 1000 {
			return fmt.Sprintf("%.2fGB", total/1024)
		}
		return fmt.Sprintf("%dMB", int(total))
	}
	return m[0]
}

func parseFlags(raw string) []string {
	seen := make(map[string]struct{})
	var flags []string
	add := func(flag string) {
		if _, ok := seen[flag]; !ok {
			seen[flag] = struct{}{}
			flags = append(flags, flag)
		}
	}

	for _, m := range releaseFlagRe.FindAllStringSubmatch(raw, -1) {
		flag := strings.ToUpper(m[1])
		if strings.HasPrefix(flag, "10") {
			flag = "10BIT"
		}
		add(flag)
	}
	if completePackRe.MatchString(raw) {
		add("COMPLETE")
	}
	return flags
}

func cleanTitle(s string) string {
	s = separatorsRe.ReplaceAllString(s, " ")
	s = bracketsRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}

// finishTitle drops punctuation-only tokens left behind after matched
// metadata was cut out of the working title.
func finishTitle(s string) string {
	var kept []string
	for _, token := range strings.Fields(cleanTitle(s)) {
		if strings.Trim(token, "-–&,") == "" {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Trim(strings.Join(kept, " "), " -–")
}

func removeWord(s, word string) string {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return s
	}
	return re.ReplaceAllString(s, "")
}
