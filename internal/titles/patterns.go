package titles

import "regexp"

// Pattern order matters: matched tokens are removed from the working title
// exactly once, so broader patterns run after the more specific ones.
var (
	separatorsRe = regexp.MustCompile(`[._+]+`)
	bracketsRe   = regexp.MustCompile(`[\[\](){}]`)
	multiSpaceRe = regexp.MustCompile(`\s+`)

	sitePrefixRe   = regexp.MustCompile(`(?i)^(?:www\.)?[a-z0-9-]+(?:\.[a-z0-9-]+)*\.[a-z]{2,4}\s+[-\x{2013}]\s+`)
	containerExtRe = regexp.MustCompile(`(?i)\.(mkv|mp4|avi)$`)

	yearRe       = regexp.MustCompile(`\b(19[89]\d|20\d{2})\b`)
	resolutionRe = regexp.MustCompile(`(?i)\b(2160p|1080p|720p|480p|4k)\b`)
	qualityRe    = regexp.MustCompile(`(?i)\b(WEB-?DL|BluRay|HDTV|DVDRip|BDRip|Remux|HDRip|CAM|WEBRip)\b`)

	videoCodecRe = regexp.MustCompile(`(?i)\b(x265|x264|HEVC|AVC|H\.?265|H\.?264|VP9|AV1)\b`)
	audioCodecRe = regexp.MustCompile(`(?i)\b(EAC3|AC-?3|DTS-HD MA|DTS-HD|DTS|TrueHD|Atmos|Opus|MP3|AAC)\b`)

	seasonRe      = regexp.MustCompile(`(?i)\b(?:Season|Temporada|Saison|Stagione|S)[. ]?(\d{1,2})\b`)
	seasonEpRe    = regexp.MustCompile(`(?i)\bS(\d{1,2})((?:[ ._-]?E\d{1,3})+)\b`)
	episodeChainRe = regexp.MustCompile(`(?i)E(\d{1,3})`)
	episodeRe     = regexp.MustCompile(`(?i)\b(?:E|Ep|Episode)[. ]?(\d{1,3})\b`)
	episodeRangeRe = regexp.MustCompile(`(?i)\bE(\d{1,3})[-\x{2013}]E?(\d{1,3})\b`)
	episodeBracketRangeRe = regexp.MustCompile(`(?i)Ep\[(\d{1,3})-(\d{1,3})\]`)

	sizeRe      = regexp.MustCompile(`(?i)\b(\d+x)?(\d+(?:\.\d+)?)\s?(GB|GiB|MB|MiB)\b`)
	langBlockRe = regexp.MustCompile(`(?i)\[([^\]]*?(?:Tam|Hin|Eng|Tel|Mal|Kan|Mar|Ben)[^\]]*?)\]`)
	langSplitRe = regexp.MustCompile(`[+\-/,.\s]+`)

	groupRe       = regexp.MustCompile(`-([A-Za-z0-9]+)$|\[([A-Za-z0-9.-]+)\]$`)
	knownGroupsRe = regexp.MustCompile(`(?i)\b(YTS|NTb|EVO|FGT|AMZN|NF|RARB|QxR|Tigole|PSA)\b`)

	releaseFlagRe   = regexp.MustCompile(`(?i)\b(PROPER|REPACK|HDR10\+?|HDR|10[ .-]?bit)\b`)
	completePackRe  = regexp.MustCompile(`(?i)\bseason[ ._-]?packs?\b|\ball[ ._-]?seasons?\b|\bfull[ ._-]seasons?\b|\bcomplete\b`)
	trailingSeasonRe = regexp.MustCompile(`(?i)\bS\d{2}\b`)
)

var languageMap = map[string]string{
	"tamil": "tam", "tam": "tam",
	"hindi": "hin", "hin": "hin",
	"english": "eng", "eng": "eng",
	"telugu": "tel", "tel": "tel",
	"malayalam": "mal", "mal": "mal",
	"kannada": "kan", "kan": "kan",
	"marathi": "mar", "mar": "mar",
	"bengali": "ben", "ben": "ben",
	"multi": "multi", "dubbed": "multi",
}
