// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/VacTuzX-dot/xfrontend/internal/service"
	"github.com/VacTuzX-dot/xfrontend/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func cmdFetch(ctx context.Context, fetcher service.RegistryFetcher) tea.Cmd {
	return func() tea.Msg {
		res, err := fetcher.FetchAll(ctx, models.FetchManual)
		return fetchDoneMsg{result: res, err: err}
	}
}

func cmdDeleteOne(ctx context.Context, d service.MutationDispatcher, id models.RecordID) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: opDelete, err: d.DeleteOne(ctx, id)}
	}
}

func cmdRehashOne(ctx context.Context, d service.MutationDispatcher, rec models.UserRecord) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{op: opRehash, err: d.RehashOne(ctx, rec)}
	}
}

func cmdCreate(ctx context.Context, d service.MutationDispatcher, req models.SignUpRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := d.Create(ctx, req)
		return mutationDoneMsg{op: opCreate, err: err}
	}
}

func cmdEdit(ctx context.Context, d service.MutationDispatcher, id models.RecordID, req models.EditRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := d.Edit(ctx, id, req)
		return mutationDoneMsg{op: opEdit, err: err}
	}
}

// cmdDeleteMany streams progress through send while the batch runs and
// returns the final result as its message.
func cmdDeleteMany(ctx context.Context, d service.MutationDispatcher, ids []models.RecordID, send func(tea.Msg)) tea.Cmd {
	return func() tea.Msg {
		res := d.DeleteMany(ctx, ids, func(p models.BatchProgress) {
			send(batchProgressMsg{op: opDeleteMany, progress: p})
		})
		return batchDoneMsg{op: opDeleteMany, result: res}
	}
}

func cmdRehashAll(ctx context.Context, d service.MutationDispatcher, records []models.UserRecord, send func(tea.Msg)) tea.Cmd {
	return func() tea.Msg {
		res := d.RehashAll(ctx, records, func(p models.BatchProgress) {
			send(batchProgressMsg{op: opRehashAll, progress: p})
		})
		return batchDoneMsg{op: opRehashAll, result: res}
	}
}

func cmdCopyUsername(username string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{username: username, err: writeClipboard(username)}
	}
}

func cmdSignOut(ctx context.Context, sessions service.SessionService) tea.Cmd {
	return func() tea.Msg {
		return signOutDoneMsg{err: sessions.SignOut(ctx)}
	}
}

func cmdHighlightTick() tea.Cmd {
	return tea.Tick(highlightTickInterval, func(t time.Time) tea.Msg {
		return highlightTickMsg(t)
	})
}
