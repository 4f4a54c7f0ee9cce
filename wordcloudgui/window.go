package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"goWordCloud/analysislib"
	"goWordCloud/cloudlib"
	"goWordCloud/configlib"
	"goWordCloud/exportlib"
	"goWordCloud/freqlib"
	"goWordCloud/iolib"
	"goWordCloud/sessionlib"
	"goWordCloud/stringlib"
)

var tableHeaders = []string{"순위", "단어", "빈도"}

var errNothingToSave = errors.New("no word cloud generated yet")

// window owns every widget. All methods run on the fyne main goroutine.
type window struct {
	win     fyne.Window
	cfg     *configlib.Config
	session *sessionlib.Session
	logger  *log.Logger

	filePath       *widget.Entry
	text           *widget.Entry
	maxWords       *widget.Slider
	maxWordsLabel  *widget.Label
	minLength      *widget.Slider
	minLengthLabel *widget.Label
	palette        *widget.Select
	generate       *widget.Button
	progress       *widget.ProgressBarInfinite
	status         *widget.Label

	cloud     *fyne.Container
	rows      []freqlib.Entry
	freqTable *widget.Table

	// onApplied, when set, runs on the main goroutine after an outcome reached the widgets
	onApplied func(sessionlib.State)
}

func newWindow(win fyne.Window, cfg *configlib.Config, s *sessionlib.Session, logger *log.Logger) *window {
	return &window{win: win, cfg: cfg, session: s, logger: logger}
}

/***************************************************************************************************************
* Layout *******************************************************************************************************
***************************************************************************************************************/

func (w *window) build() fyne.CanvasObject {
	w.filePath = widget.NewEntry()
	w.filePath.SetPlaceHolder("텍스트 파일 경로")
	fileRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(
			widget.NewButton("찾아보기", w.browseFile),
			widget.NewButton("파일 읽기", w.loadFile),
		),
		w.filePath)

	w.text = widget.NewMultiLineEntry()
	w.text.Wrapping = fyne.TextWrapWord
	w.text.SetPlaceHolder("텍스트를 직접 입력하거나 파일을 읽어오세요")

	w.maxWordsLabel = widget.NewLabel("")
	w.maxWords = widget.NewSlider(configlib.MinMaxWords, configlib.MaxMaxWords)
	w.maxWords.Step = 10
	w.maxWords.OnChanged = func(f float64) {
		w.maxWordsLabel.SetText(fmt.Sprintf("최대 단어 수: %d", int(f)))
	}
	w.maxWords.SetValue(float64(w.cfg.MaxWords))
	w.maxWords.OnChanged(w.maxWords.Value)

	w.minLengthLabel = widget.NewLabel("")
	w.minLength = widget.NewSlider(configlib.MinMinLength, configlib.MaxMinLength)
	w.minLength.Step = 1
	w.minLength.OnChanged = func(f float64) {
		w.minLengthLabel.SetText(fmt.Sprintf("최소 단어 길이: %d", int(f)))
	}
	w.minLength.SetValue(float64(w.cfg.MinLength))
	w.minLength.OnChanged(w.minLength.Value)

	w.palette = widget.NewSelect(cloudlib.Palettes(), nil)
	w.palette.SetSelected(w.cfg.Palette)

	settings := widget.NewCard("워드클라우드 설정", "", container.NewVBox(
		w.maxWordsLabel, w.maxWords,
		w.minLengthLabel, w.minLength,
		container.NewBorder(nil, nil, widget.NewLabel("색상 테마:"), nil, w.palette),
	))

	w.generate = widget.NewButton("워드클라우드 생성", w.onGenerate)
	w.generate.Importance = widget.HighImportance
	w.progress = widget.NewProgressBarInfinite()
	w.progress.Stop()
	w.progress.Hide()
	w.status = widget.NewLabel("준비됨")

	left := container.NewBorder(
		container.NewVBox(widget.NewLabel("파일 선택:"), fileRow, widget.NewLabel("텍스트 직접 입력:")),
		container.NewVBox(settings, w.generate, w.progress, w.status),
		nil, nil,
		w.text)

	w.cloud = container.NewStack(widget.NewLabel("생성된 워드클라우드가 여기에 표시됩니다"))
	w.freqTable = widget.NewTable(
		func() (int, int) { return len(w.rows) + 1, len(tableHeaders) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		w.updateCell)
	w.freqTable.SetColumnWidth(0, 60)
	w.freqTable.SetColumnWidth(1, 200)
	w.freqTable.SetColumnWidth(2, 80)

	tabs := container.NewAppTabs(
		container.NewTabItem("워드클라우드", w.cloud),
		container.NewTabItem("단어 빈도", w.freqTable),
	)
	saveRow := container.NewHBox(
		widget.NewButton("워드클라우드 저장", w.saveCloud),
		widget.NewButton("단어빈도 저장", w.saveFrequency),
	)
	right := container.NewBorder(nil, container.NewCenter(saveRow), nil, nil, tabs)

	split := container.NewHSplit(
		widget.NewCard("텍스트 입력 및 설정", "", left),
		widget.NewCard("결과", "", right))
	split.Offset = 0.35

	return split
}

func (w *window) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	l := obj.(*widget.Label)
	if id.Row == 0 {
		l.TextStyle = fyne.TextStyle{Bold: true}
		l.SetText(tableHeaders[id.Col])
		return
	}
	l.TextStyle = fyne.TextStyle{}
	e := w.rows[id.Row-1]
	switch id.Col {
	case 0:
		l.SetText(strconv.Itoa(e.Rank))
	case 1:
		l.SetText(e.Word)
	case 2:
		l.SetText(strconv.Itoa(e.Count))
	}
}

/***************************************************************************************************************
* File input ***************************************************************************************************
***************************************************************************************************************/

func (w *window) browseFile() {
	fd := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()
		w.filePath.SetText(r.URI().Path())
	}, w.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt", ".html", ".htm"}))
	fd.Show()
}

func (w *window) loadFile() {
	path := w.filePath.Text
	if path == "" {
		dialog.ShowInformation("경고", "파일을 선택해주세요.", w.win)
		return
	}

	text, err := iolib.ReadText(path)
	if err != nil {
		w.logger.Println(err)
		var re *iolib.ReadError
		if errors.As(err, &re) && re.NotFound() {
			dialog.ShowError(fmt.Errorf("파일을 찾을 수 없습니다:\n%s", path), w.win)
			return
		}
		dialog.ShowError(fmt.Errorf("파일을 읽는 중 오류가 발생했습니다:\n%v", err), w.win)
		return
	}

	w.text.SetText(text)
	if stringlib.MostlyNonKorean(text) {
		w.logger.Printf("%s: hangul ratio %.2f", path, stringlib.HangulRatio(text))
		w.status.SetText(fmt.Sprintf("파일 로드 완료: %d자 (한글이 거의 없는 텍스트)", stringlib.RuneLen(text)))
		dialog.ShowInformation("경고", "텍스트 대부분이 한글이 아닙니다. 추출되는 단어가 적을 수 있습니다.", w.win)
		return
	}
	w.status.SetText(fmt.Sprintf("파일 로드 완료: %d자", stringlib.RuneLen(text)))
}

/***************************************************************************************************************
* Generation ***************************************************************************************************
***************************************************************************************************************/

func (w *window) params() analysislib.Params {
	opts := w.cfg.CloudOptions()
	opts.MaxWords = int(w.maxWords.Value)
	if w.palette.Selected != "" {
		opts.Palette = w.palette.Selected
	}

	return analysislib.Params{MinLength: int(w.minLength.Value), Cloud: opts}
}

// submit starts a request and switches the form to its running look
func (w *window) submit() (*sessionlib.Job, bool) {
	job, err := w.session.Submit(w.text.Text, w.params())
	switch {
	case errors.Is(err, sessionlib.ErrEmptyText):
		dialog.ShowInformation("경고", "텍스트를 입력해주세요.", w.win)
		return nil, false
	case err != nil:
		w.status.SetText(err.Error())
		return nil, false
	}

	w.generate.Disable()
	w.progress.Show()
	w.progress.Start()
	w.status.SetText("워드클라우드 생성 중...")

	return job, true
}

func (w *window) onGenerate() {
	job, ok := w.submit()
	if !ok {
		return
	}

	// the worker only fills the job; widgets change on the main goroutine
	go func() {
		o := job.Wait()
		fyne.Do(func() { w.apply(o) })
	}()
}

func (w *window) apply(o sessionlib.Outcome) {
	st, err := w.session.Apply(o)
	if err != nil {
		w.logger.Println(err)
		return
	}

	w.progress.Stop()
	w.progress.Hide()
	w.generate.Enable()

	switch st {
	case sessionlib.Completed:
		w.showResult(o.Result)
		w.status.SetText("워드클라우드 생성 완료")
	case sessionlib.NoWords:
		w.status.SetText("준비됨")
		dialog.ShowInformation("경고", "분석할 수 있는 단어가 없습니다.", w.win)
	default:
		w.logger.Println(o.Err)
		w.status.SetText("오류")
		dialog.ShowError(fmt.Errorf("워드클라우드 생성 중 오류가 발생했습니다:\n%v", o.Err), w.win)
	}

	if w.onApplied != nil {
		w.onApplied(st)
	}
}

func (w *window) showResult(res *analysislib.Result) {
	w.showCloud(res.Cloud)
	w.rows = res.Table.Top(w.cfg.DisplayRows)
	w.freqTable.Refresh()
}

func (w *window) showCloud(img image.Image) {
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.SetMinSize(fyne.NewSize(400, 300))
	w.cloud.Objects = []fyne.CanvasObject{ci}
	w.cloud.Refresh()
}

/***************************************************************************************************************
* Export *******************************************************************************************************
***************************************************************************************************************/

// saveDialog asks for a path and hands it to save once the dialog closed its writer
func (w *window) saveDialog(name string, exts []string, save func(path string) error) {
	fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		if wc == nil {
			return
		}
		path := wc.URI().Path()
		wc.Close()

		if err := save(path); err != nil {
			w.logger.Println(err)
			dialog.ShowError(fmt.Errorf("저장 중 오류가 발생했습니다:\n%v", err), w.win)
			return
		}
		w.status.SetText("저장 완료: " + path)
	}, w.win)
	fd.SetFileName(name)
	fd.SetFilter(storage.NewExtensionFileFilter(exts))
	fd.Show()
}

func (w *window) saveCloud() {
	if w.session.Last() == nil {
		dialog.ShowInformation("경고", "먼저 워드클라우드를 생성해주세요.", w.win)
		return
	}
	w.saveDialog("wordcloud.png", []string{".png", ".jpg", ".jpeg"}, w.exportCloud)
}

func (w *window) saveFrequency() {
	if w.session.Last() == nil {
		dialog.ShowInformation("경고", "먼저 워드클라우드를 생성해주세요.", w.win)
		return
	}
	w.saveDialog("word_frequency.csv", []string{".csv", ".xlsx"}, w.exportFrequency)
}

// exportCloud writes the last rendered cloud to path
func (w *window) exportCloud(path string) error {
	res := w.session.Last()
	if res == nil {
		return errNothingToSave
	}
	return exportlib.SaveImage(path, res.Cloud)
}

// exportFrequency writes the full ranked table of the last result to path
func (w *window) exportFrequency(path string) error {
	res := w.session.Last()
	if res == nil {
		return errNothingToSave
	}
	return exportlib.SaveTable(path, res.Table.Ranked())
}
