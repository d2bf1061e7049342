package domain

import "unicode"

// ActivityKind identifies what a student was doing during a logged span.
type ActivityKind int

const (
	// ActivityUnrecognized is returned for any code outside the table.
	ActivityUnrecognized ActivityKind = iota
	ActivityReadTextbookOrCanvas
	ActivityStudyPracticeQuiz
	ActivityTakeScoringQuiz
	ActivityCanvasDiscussion
	ActivityTeamMeeting
	ActivityDocumentationWork
	ActivityWorkOnDesigns
	ActivityProgramming
	ActivityProgramTestingOrTestPlan
	ActivityStudyForExam
	ActivityProfessorMeeting
	ActivityMiniLectureTask
	ActivityReadOrWatchOutsideContent
	ActivityOther
)

type activityInfo struct {
	code rune
	name string
}

// activityTable is ordered by code and is the single source for both
// decode directions.
var activityTable = []struct {
	kind ActivityKind
	info activityInfo
}{
	{ActivityReadTextbookOrCanvas, activityInfo{'0', "ReadTextbookOrCanvas"}},
	{ActivityStudyPracticeQuiz, activityInfo{'1', "StudyPracticeQuiz"}},
	{ActivityTakeScoringQuiz, activityInfo{'2', "TakeScoringQuiz"}},
	{ActivityCanvasDiscussion, activityInfo{'3', "CanvasDiscussion"}},
	{ActivityTeamMeeting, activityInfo{'4', "TeamMeeting"}},
	{ActivityDocumentationWork, activityInfo{'5', "DocumentationWork"}},
	{ActivityWorkOnDesigns, activityInfo{'6', "WorkOnDesigns"}},
	{ActivityProgramming, activityInfo{'7', "Programming"}},
	{ActivityProgramTestingOrTestPlan, activityInfo{'8', "ProgramTestingOrTestPlan"}},
	{ActivityStudyForExam, activityInfo{'9', "StudyForExam"}},
	{ActivityProfessorMeeting, activityInfo{'A', "ProfessorMeeting"}},
	{ActivityMiniLectureTask, activityInfo{'B', "MiniLectureTask"}},
	{ActivityReadOrWatchOutsideContent, activityInfo{'C', "ReadOrWatchOutsideContent"}},
	{ActivityOther, activityInfo{'D', "Other"}},
}

var (
	kindByCode = make(map[rune]ActivityKind, len(activityTable))
	infoByKind = make(map[ActivityKind]activityInfo, len(activityTable))
)

func init() {
	for _, row := range activityTable {
		kindByCode[row.info.code] = row.kind
		infoByKind[row.kind] = row.info
	}
}

// DecodeActivityCode maps a one-character code to its ActivityKind.
// Letters are case-folded. Every other input, including the empty string
// and multi-character strings, yields ActivityUnrecognized.
func DecodeActivityCode(text string) ActivityKind {
	r := []rune(text)
	if len(r) != 1 {
		return ActivityUnrecognized
	}
	if kind, ok := kindByCode[unicode.ToUpper(r[0])]; ok {
		return kind
	}
	return ActivityUnrecognized
}

// Code returns the canonical (upper-case) code character for k.
func (k ActivityKind) Code() (rune, bool) {
	info, ok := infoByKind[k]
	return info.code, ok
}

func (k ActivityKind) String() string {
	if info, ok := infoByKind[k]; ok {
		return info.name
	}
	return "Unrecognized"
}

// Kinds lists the named activity kinds in code order.
func Kinds() []ActivityKind {
	kinds := make([]ActivityKind, 0, len(activityTable))
	for _, row := range activityTable {
		kinds = append(kinds, row.kind)
	}
	return kinds
}
