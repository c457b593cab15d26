package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/DevIBlogistica/frontend-tratativas/client"
	"github.com/DevIBlogistica/frontend-tratativas/notify"
	"github.com/DevIBlogistica/frontend-tratativas/theme"
)

// follow prints every notification shown after the call to w until the
// returned func is called.
func follow(center *notify.Center, w io.Writer, pal theme.Palette) (stop func()) {
	var last int64
	for _, n := range center.Notifications() {
		if n.ID > last {
			last = n.ID
		}
	}
	return center.Subscribe(func(list []notify.Notification) {
		for _, n := range list {
			if n.ID <= last {
				continue
			}
			last = n.ID
			fmt.Fprintln(w, pal.Level(string(n.Type)).Render("["+string(n.Type)+"] "+n.Message))
		}
	})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTratativas(w io.Writer, pal theme.Palette, list []client.Tratativa) {
	if len(list) == 0 {
		fmt.Fprintln(w, pal.Muted.Render("Nenhuma tratativa encontrada"))
		return
	}
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10), t.Titulo, string(t.Status), string(t.Prioridade), t.Responsavel, t.DataAtualizacao,
		})
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(pal.Muted).
		Headers("ID", "TITULO", "STATUS", "PRIORIDADE", "RESPONSAVEL", "ATUALIZADA").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return pal.Title.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(w, tbl.String())
}

func renderTratativa(w io.Writer, pal theme.Palette, t *client.Tratativa) {
	fmt.Fprintln(w, pal.Title.Render(fmt.Sprintf("#%d %s", t.ID, t.Titulo)))
	field := func(name, value string) {
		fmt.Fprintf(w, "%s %s\n", pal.Muted.Render(name+":"), value)
	}
	field("Descrição", t.Descricao)
	field("Status", string(t.Status))
	field("Prioridade", string(t.Prioridade))
	field("Responsável", t.Responsavel)
	field("Criada em", t.DataCriacao)
	field("Atualizada em", t.DataAtualizacao)
}

func renderStats(w io.Writer, pal theme.Palette, s *client.DashboardStats) {
	fmt.Fprintln(w, pal.Title.Render("Dashboard"))
	fmt.Fprintf(w, "%s %d\n", pal.Muted.Render("Total:"), s.Total)
	fmt.Fprintf(w, "%s %d\n", pal.Muted.Render("Pendentes:"), s.Pendentes)
	fmt.Fprintf(w, "%s %d\n", pal.Muted.Render("Concluídas:"), s.Concluidas)
	fmt.Fprintf(w, "%s %s\n", pal.Muted.Render("Tempo médio:"), s.TempoMedio)
}
