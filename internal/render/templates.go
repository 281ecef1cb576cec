package render

const tableHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <title>Showdown Usage Stats - {{.Period}}</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
            background: #0f172a;
            color: #e2e8f0;
            min-height: 100vh;
            padding: 2rem 1rem;
        }

        .container { max-width: 900px; margin: 0 auto; }

        header { text-align: center; margin-bottom: 2rem; }

        h1 { font-size: 2rem; font-weight: 700; margin-bottom: 0.25rem; }

        .subtitle { color: #94a3b8; }

        .stats-bar {
            display: flex;
            justify-content: center;
            gap: 2rem;
            margin: 1.5rem 0;
            color: #94a3b8;
        }

        .stats-bar strong { color: #e2e8f0; }

        .filter { text-align: right; margin-bottom: 0.75rem; }

        select {
            background: #1e293b;
            color: #e2e8f0;
            border: 1px solid #334155;
            border-radius: 6px;
            padding: 0.4rem 0.6rem;
        }

        table { width: 100%; border-collapse: collapse; }

        th, td { padding: 0.6rem 0.8rem; text-align: left; }

        th {
            background: #1e293b;
            border-bottom: 2px solid #334155;
        }

        th a { color: #e2e8f0; text-decoration: none; }

        th a:hover { color: #60a5fa; }

        th.active a { color: #60a5fa; }

        td { border-bottom: 1px solid #1e293b; }

        td.num, th.num { text-align: right; }

        tr:hover td { background: #17233b; }

        a.fmt { color: #93c5fd; text-decoration: none; }

        a.fmt:hover { text-decoration: underline; }

        .empty { text-align: center; color: #64748b; padding: 2rem; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>Pokemon Showdown Usage</h1>
            <p class="subtitle">Battles by format, {{.Period}}</p>
        </header>

        <div class="stats-bar">
            <span>Total battles: <strong>{{comma .TotalBattles}}</strong></span>
            <span>Formats: <strong>{{.FormatCount}}</strong></span>
        </div>

        <form class="filter" method="get" action="/">
            <input type="hidden" name="period" value="{{.Period}}">
            <label for="rating">Minimum rating</label>
            <select id="rating" name="rating" onchange="this.form.submit()">
                {{range .RatingOptions}}
                <option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
                {{end}}
            </select>
        </form>

        <table>
            <thead>
                <tr>
                    {{range .Columns}}
                    <th {{if ne .Key "name"}}class="num{{if .Active}} active{{end}}"{{else if .Active}}class="active"{{end}} data-sort="{{.Key}}">
                        <a href="{{.Href}}">{{.Label}}{{if .Active}}{{if .Desc}} &#9660;{{else}} &#9650;{{end}}{{end}}</a>
                    </th>
                    {{end}}
                </tr>
            </thead>
            <tbody>
                {{range .Rows}}
                <tr>
                    <td><a class="fmt" href="/?period={{$.Period}}&amp;format={{.Name}}">{{.Name}}</a></td>
                    <td class="num">{{comma .Battles}}</td>
                    <td class="num">{{pct .Percentage}}%</td>
                </tr>
                {{else}}
                <tr><td colspan="3" class="empty">No formats have battles at this rating.</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>
</body>
</html>
`

const detailHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <title>{{.Name}} - Showdown Usage Stats</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
            background: #0f172a;
            color: #e2e8f0;
            min-height: 100vh;
            padding: 2rem 1rem;
        }

        .container { max-width: 600px; margin: 0 auto; }

        h1 { font-size: 1.75rem; margin-bottom: 0.25rem; }

        .subtitle { color: #94a3b8; margin-bottom: 1.5rem; }

        .summary { margin-bottom: 1.5rem; color: #94a3b8; }

        .summary strong { color: #e2e8f0; }

        table { width: 100%; border-collapse: collapse; }

        th, td { padding: 0.5rem 0.8rem; border-bottom: 1px solid #1e293b; }

        th { background: #1e293b; text-align: left; }

        td.num, th.num { text-align: right; }

        a { color: #93c5fd; }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Name}}</h1>
        <p class="subtitle">{{.Period}}</p>

        <p class="summary">
            <strong>{{comma .TotalBattles}}</strong> battles,
            <strong>{{pct .Percentage}}%</strong> of all play this period.
        </p>

        <table>
            <thead>
                <tr><th>Rating floor</th><th class="num">Battles</th></tr>
            </thead>
            <tbody>
                {{range .Breakdown}}
                <tr><td>Rating {{.Rating}}+</td><td class="num">{{comma .Battles}}</td></tr>
                {{end}}
            </tbody>
        </table>

        <p style="margin-top: 1.5rem;"><a href="{{.BackHref}}">&larr; Back to all formats</a></p>
    </div>
</body>
</html>
`

const errorHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <title>Showdown Usage Stats</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
            background: #0f172a;
            color: #e2e8f0;
            min-height: 100vh;
            display: flex;
            align-items: center;
            justify-content: center;
        }

        .box {
            text-align: center;
            padding: 2rem;
            background: #1e293b;
            border: 1px solid #334155;
            border-radius: 8px;
        }

        .box p { margin-bottom: 1rem; color: #fca5a5; }

        a { color: #93c5fd; }
    </style>
</head>
<body>
    <div class="box">
        <p>{{.Message}}</p>
        <a href="{{.BackHref}}">&larr; Back to all formats</a>
    </div>
</body>
</html>
`
