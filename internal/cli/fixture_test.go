package cli

import (
	"testing"

	"github.com/Flyrell/coursecal/internal/app"
	"github.com/Flyrell/coursecal/internal/prefs"
	"github.com/Flyrell/coursecal/internal/snapshot"
	"github.com/stretchr/testify/require"
)

const schedulePage = `<html><body>
<h1>Winter Quarter 2025</h1>
<div id="t1" class="CourseItem">
  <div class="statusIndicator registered"></div>
  <div class="classTitle">ECS 032A 001 - Intro to Programming</div>
  <div class="instructor">Smith, Jane</div>
  <div class="data meeting-times">
    <div class="meeting clearfix">
      <div class="float-left height-justified smallTitle">Lecture</div>
      <div class="float-left height-justified">9:00 AM - 9:50 AM</div>
      <div class="float-left height-justified">MW</div>
      <div class="float-left height-justified">Wellman 2</div>
    </div>
  </div>
  <div>Final Exam: 3/17/2025 8:00 AM</div>
</div>
<div id="t2" class="CourseItem">
  <div class="statusIndicator"></div>
  <div class="classTitle">MAT 021B 002 - Calculus</div>
  <div class="seats">Open Seats: 0 / 200</div>
  <div class="instructor">Chen, Robert</div>
  <div class="data meeting-times">
    <div class="meeting clearfix">
      <div class="float-left height-justified smallTitle">Lecture</div>
      <div class="float-left height-justified">9:30 AM - 10:20 AM</div>
      <div class="float-left height-justified">W</div>
      <div class="float-left height-justified">Young 198</div>
    </div>
  </div>
</div>
<div id="t3" class="CourseItem">
  <div class="statusIndicator"></div>
  <div class="classTitle">PHY 009A 001 - Classical Physics</div>
  <div class="data meeting-times">
    <div class="meeting clearfix">
      <div class="float-left height-justified smallTitle">Lecture</div>
      <div class="float-left height-justified">8:00 AM - 8:50 AM</div>
      <div class="float-left height-justified">TR</div>
      <div class="float-left height-justified">Roessler 66</div>
    </div>
  </div>
</div>
</body></html>`

const emptyPage = `<html><body><h1>Winter Quarter 2025</h1></body></html>`

func testPage(t *testing.T, html string) *snapshot.Page {
	t.Helper()
	p, err := snapshot.ParseString(html)
	require.NoError(t, err)
	return p
}

func testService(p prefs.Prefs) *app.Service {
	return app.NewService(app.Deps{Prefs: &p})
}
